// Package puzzle keeps the registry of daily solvers and runs them.
//
// Each day registers itself from init() with Register. A solver receives the
// raw puzzle input and returns both answers; the runner adds logging, timing
// and per-day error isolation so one failing day never hides the others.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"
)

// Sentinel errors for the registry and solvers.
var (
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")

	// ErrEmptyInput indicates a solver received only whitespace.
	ErrEmptyInput = errors.New("puzzle: empty input")

	// ErrNotEnoughTrees indicates day 18 input with fewer than two numbers.
	ErrNotEnoughTrees = errors.New("puzzle: need at least two snailfish numbers")
)

// Result holds both answers for one day.
type Result struct {
	Day   int
	Title string
	Part1 uint64
	Part2 uint64
}

// String renders the result the way the CLI prints it.
func (r Result) String() string {
	return fmt.Sprintf("*** Day %d: %s ***\nSolution 1: %d\nSolution 2: %d", r.Day, r.Title, r.Part1, r.Part2)
}

// Options carries runner settings down to solvers.
type Options struct {
	// Workers is forwarded to solvers that search in parallel; 0 = one per CPU.
	Workers int

	// Logger receives progress records; nil means slog.Default().
	Logger *slog.Logger
}

// Option configures Run and RunAll.
type Option func(*Options)

// WithWorkers sets the worker count forwarded to parallel solvers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger used by the runner.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Solver computes both answers from the raw input.
type Solver func(ctx context.Context, input string, opts Options) (Result, error)

type entry struct {
	title  string
	solver Solver
}

var (
	mu       sync.RWMutex
	registry = map[int]entry{}
)

// Register adds the solver for day. It panics on a duplicate day or a nil
// solver, both of which are programming errors.
func Register(day int, title string, s Solver) {
	mu.Lock()
	defer mu.Unlock()
	if s == nil {
		panic(fmt.Sprintf("puzzle: nil solver for day %d", day))
	}
	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	registry[day] = entry{title: title, solver: s}
}

// Lookup returns the title and solver for day.
func Lookup(day int) (string, Solver, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[day]

	return e.title, e.solver, ok
}

// Days lists every registered day in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	slices.Sort(days)

	return days
}

// Run solves one day with the given input.
func Run(ctx context.Context, day int, input string, opts ...Option) (Result, error) {
	title, solve, ok := Lookup(day)
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	o := buildOptions(opts)
	log := o.Logger.With(slog.Int("day", day))
	o.Logger = log

	log.Debug("Solving", slog.String("title", title), slog.Int("input_bytes", len(input)))
	start := time.Now()
	res, err := solve(ctx, input, o)
	if err != nil {
		log.Error("Solver failed", slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("day %d: %w", day, err)
	}
	res.Day, res.Title = day, title
	log.Info("Solved", slog.Duration("elapsed", time.Since(start)))

	return res, nil
}

// Outcome is the result of one day inside RunAll.
type Outcome struct {
	Day    int
	Result Result
	Err    error
}

// InputLoader returns the raw input for a day.
type InputLoader func(day int) (string, error)

// RunAll solves every registered day in order. A failing day is recorded in
// its Outcome and the remaining days still run. It stops early only when ctx
// is cancelled.
func RunAll(ctx context.Context, load InputLoader, opts ...Option) []Outcome {
	days := Days()
	out := make([]Outcome, 0, len(days))
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			out = append(out, Outcome{Day: day, Err: err})
			continue
		}
		input, err := load(day)
		if err != nil {
			out = append(out, Outcome{Day: day, Err: fmt.Errorf("day %d: %w", day, err)})
			continue
		}
		res, err := Run(ctx, day, input, opts...)
		out = append(out, Outcome{Day: day, Result: res, Err: err})
	}

	return out
}
