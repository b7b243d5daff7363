package puzzle_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2021/internal/puzzle"
	"github.com/katalvlaran/aoc2021/snailfish"
)

const homework = `[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]
[[[5,[2,8]],4],[5,[[9,9],0]]]
[6,[[[6,2],[5,6]],[[7,6],[4,7]]]]
[[[6,[0,7]],[0,9]],[4,[9,[9,0]]]]
[[[7,[6,4]],[3,[1,3]]],[[[5,5],1],9]]
[[6,[[7,3],[3,2]]],[[[3,8],[5,7]],4]]
[[[[5,4],[7,7]],8],[[8,3],8]]
[[9,3],[[9,9],[6,[4,9]]]]
[[2,[[7,7],7]],[[5,8],[[9,3],[0,2]]]]
[[[[5,2],5],[8,[3,7]]],[[5,[7,5]],[4,4]]]
`

// quiet discards runner logs.
var quiet = puzzle.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

// TestDays lists the registered days in order.
func TestDays(t *testing.T) {
	assert.Equal(t, []int{16, 18}, puzzle.Days())

	title, solve, ok := puzzle.Lookup(18)
	require.True(t, ok)
	assert.Equal(t, "Snailfish", title)
	assert.NotNil(t, solve)

	_, _, ok = puzzle.Lookup(3)
	assert.False(t, ok)
}

// TestRegister_Panics rejects duplicate days and nil solvers.
func TestRegister_Panics(t *testing.T) {
	noop := func(context.Context, string, puzzle.Options) (puzzle.Result, error) {
		return puzzle.Result{}, nil
	}
	assert.Panics(t, func() { puzzle.Register(16, "again", noop) })
	assert.Panics(t, func() { puzzle.Register(99, "nil", nil) })
	assert.Equal(t, []int{16, 18}, puzzle.Days())
}

// TestRun_Day16 answers both parts for sample transmissions.
func TestRun_Day16(t *testing.T) {
	cases := []struct {
		hex          string
		part1, part2 uint64
	}{
		{"8A004A801A8002F478", 16, 15},
		{"C200B40A82", 14, 3},
		{"9C0141080250320F1802104A08", 20, 1},
		{"A0016C880162017C3686B18A3D4780\n", 31, 54},
	}
	for _, c := range cases {
		res, err := puzzle.Run(context.Background(), 16, c.hex, quiet)
		require.NoError(t, err, c.hex)
		assert.Equal(t, puzzle.Result{Day: 16, Title: "Packet Decoder", Part1: c.part1, Part2: c.part2}, res)
	}
}

// TestRun_Day18 answers both parts for the homework list.
func TestRun_Day18(t *testing.T) {
	for _, w := range []int{0, 1, 4} {
		res, err := puzzle.Run(context.Background(), 18, homework, quiet, puzzle.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, uint64(4140), res.Part1)
		assert.Equal(t, uint64(3993), res.Part2)
	}
}

// TestRun_Errors wraps solver failures with the day.
func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		day   int
		input string
		want  error
	}{
		{3, "", puzzle.ErrUnknownDay},
		{16, "  \n", puzzle.ErrEmptyInput},
		{18, "[1,2]\n", puzzle.ErrNotEnoughTrees},
		{18, "[1,2]\n[3,", snailfish.ErrSyntax},
		{18, "", snailfish.ErrEmptyInput},
		{18, homework, snailfish.ErrOptionViolation},
	}
	for _, c := range cases {
		_, err := puzzle.Run(ctx, c.day, c.input, quiet, puzzle.WithWorkers(-1))
		assert.ErrorIs(t, err, c.want, "day %d input %q", c.day, c.input)
	}

	_, err := puzzle.Run(ctx, 16, "ZZ", quiet)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "day 16")
}

// TestRun_Logs records the day on every runner record.
func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := puzzle.Run(context.Background(), 16, "D2FE28", puzzle.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "msg=Solved")
	assert.Contains(t, buf.String(), "msg=\"Decoded transmission\"")
	assert.Contains(t, buf.String(), "day=16")
}

// TestRunAll keeps going after a failing day.
func TestRunAll(t *testing.T) {
	inputs := map[int]string{16: "not hex"}
	load := func(day int) (string, error) {
		in, ok := inputs[day]
		if !ok {
			return homework, nil
		}

		return in, nil
	}
	out := puzzle.RunAll(context.Background(), load, quiet)
	require.Len(t, out, 2)

	assert.Equal(t, 16, out[0].Day)
	assert.Error(t, out[0].Err)
	assert.Equal(t, 18, out[1].Day)
	require.NoError(t, out[1].Err)
	assert.Equal(t, uint64(4140), out[1].Result.Part1)
}

// TestRunAll_LoadAndCancel reports loader errors and a cancelled context per day.
func TestRunAll_LoadAndCancel(t *testing.T) {
	boom := errors.New("no such file")
	out := puzzle.RunAll(context.Background(), func(int) (string, error) { return "", boom }, quiet)
	require.Len(t, out, 2)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, boom)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out = puzzle.RunAll(ctx, func(int) (string, error) { return homework, nil }, quiet)
	for _, o := range out {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

// TestResult_String matches the CLI layout.
func TestResult_String(t *testing.T) {
	r := puzzle.Result{Day: 16, Title: "Packet Decoder", Part1: 31, Part2: 54}
	assert.Equal(t, "*** Day 16: Packet Decoder ***\nSolution 1: 31\nSolution 2: 54", r.String())
}
