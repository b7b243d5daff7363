package puzzle

import (
	"context"
	"log/slog"
	"strings"

	"github.com/katalvlaran/aoc2021/packet"
)

func init() {
	Register(16, "Packet Decoder", solveDay16)
}

// solveDay16 decodes the hex transmission once and answers both parts:
// the sum of every version field and the value of the outermost packet.
func solveDay16(_ context.Context, input string, opts Options) (Result, error) {
	hex := strings.TrimSpace(input)
	if hex == "" {
		return Result{}, ErrEmptyInput
	}
	p, err := packet.DecodeHex(hex)
	if err != nil {
		return Result{}, err
	}
	opts.Logger.Debug("Decoded transmission",
		slog.Int("bits", p.BitsConsumed),
		slog.String("kind", p.Kind.String()))

	v, err := packet.Evaluate(p)
	if err != nil {
		return Result{}, err
	}

	return Result{Part1: packet.VersionSum(p), Part2: v}, nil
}
