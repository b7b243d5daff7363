package puzzle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/aoc2021/snailfish"
)

func init() {
	Register(18, "Snailfish", solveDay18)
}

// solveDay18 answers the magnitude of the whole homework sum and the
// largest magnitude of any two distinct numbers added in either order.
func solveDay18(ctx context.Context, input string, opts Options) (Result, error) {
	trees, err := snailfish.ParseAll(input)
	if err != nil {
		return Result{}, err
	}
	if len(trees) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNotEnoughTrees, len(trees))
	}
	opts.Logger.Debug("Parsed homework", slog.Int("numbers", len(trees)))

	total, _ := snailfish.SumMagnitude(trees)
	best, _, err := snailfish.MaxPairwiseMagnitude(trees,
		snailfish.WithContext(ctx),
		snailfish.WithWorkers(opts.Workers))
	if err != nil {
		return Result{}, err
	}

	return Result{Part1: total, Part2: best}, nil
}
