package snailfish

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sum folds trees left to right with Add: ((t0 + t1) + t2) + ...
// It returns nil and false for an empty list; a single tree is returned
// as given, unreduced.
func Sum(trees []*Tree) (*Tree, bool) {
	if len(trees) == 0 {
		return nil, false
	}
	acc := trees[0]
	for _, t := range trees[1:] {
		acc = Add(acc, t)
	}

	return acc, true
}

// SumMagnitude returns Magnitude(Sum(trees)), or 0 and false for an empty list.
func SumMagnitude(trees []*Tree) (uint64, bool) {
	s, ok := Sum(trees)
	if !ok {
		return 0, false
	}

	return Magnitude(s), true
}

// MaxPairwiseMagnitude returns the largest Magnitude(Add(trees[i], trees[j]))
// over all ordered index pairs with i != j. Both orders are tried because
// Add is not commutative. Identical trees at different positions still form
// a pair.
//
// With fewer than two trees it returns 0, false and no error.
//
// Rows of the pair matrix are searched concurrently on an errgroup limited
// to Options.Workers goroutines. Cancelling Options.Ctx stops the search and
// returns the context error.
func MaxPairwiseMagnitude(trees []*Tree, opts ...Option) (uint64, bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, false, o.err
	}
	for i, t := range trees {
		if t == nil {
			return 0, false, fmt.Errorf("%w: index %d", ErrNilTree, i)
		}
	}
	n := len(trees)
	if n < 2 {
		return 0, false, nil
	}

	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	best := make([]uint64, n) // best[i] = max over row i
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(workers)
	for i := range trees {
		i := i
		g.Go(func() error {
			for j := range trees {
				if i == j {
					continue
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				best[i] = max(best[i], Magnitude(Add(trees[i], trees[j])))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, false, err
	}

	var top uint64
	for _, m := range best {
		top = max(top, m)
	}

	return top, true, nil
}
