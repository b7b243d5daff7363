package snailfish

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for parsing and searching.
var (
	// ErrSyntax indicates input that does not match the pair grammar.
	ErrSyntax = errors.New("snailfish: syntax error")

	// ErrEmptyInput indicates ParseAll found no tree at all.
	ErrEmptyInput = errors.New("snailfish: input holds no numbers")

	// ErrNilTree indicates a nil tree where a number was required.
	ErrNilTree = errors.New("snailfish: nil tree")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("snailfish: invalid option supplied")
)

// Rewrite thresholds.
const (
	// ExplodeDepth is the nesting depth (root pair = 0) at which a pair of two numbers explodes.
	ExplodeDepth = 4

	// SplitThreshold is the smallest number that splits.
	SplitThreshold = 10
)

// ParseError reports where parsing failed. It wraps ErrSyntax.
type ParseError struct {
	// Pos is the byte offset of the failure in the input.
	Pos int
	// Msg describes what was expected.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("snailfish: %s at offset %d", e.Msg, e.Pos)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Option configures MaxPairwiseMagnitude via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters for the pairwise search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds how many rows of the pair matrix are searched concurrently.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the worker pool size.
//
//	n > 0:  at most n concurrent workers (1 = sequential)
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
