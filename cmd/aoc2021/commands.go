package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/puzzle"
)

// errDaysFailed is returned by "all" when at least one day failed.
var errDaysFailed = errors.New("one or more days failed")

// app holds flag values and the state prepared before a command runs.
type app struct {
	configPath string
	inputPath  string
	workers    int
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc2021 <day|all>",
		Short: "Solve Advent of Code 2021 puzzles",
		Long: `aoc2021 decodes BITS transmissions (day 16) and does snailfish
homework (day 18). Inputs come from aoc2021.yaml or --input.`,
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
		RunE:              a.run,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&a.inputPath, "input", "", `input file for a single day ("-" for stdin)`)
	root.Flags().IntVar(&a.workers, "workers", 0, "workers for parallel searches (0 = one per CPU)")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE:  a.list,
	})

	return root
}

// prepare loads the config file, applies flag overrides and builds the logger.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
		cfg.Workers = a.workers
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	opts := []puzzle.Option{
		puzzle.WithWorkers(a.cfg.Workers),
		puzzle.WithLogger(a.logger),
	}
	load := func(day int) (string, error) {
		return a.readInput(cmd.InOrStdin(), day)
	}

	if args[0] == "all" {
		if a.inputPath != "" {
			return errors.New("--input needs a single day, not all")
		}
		failed := 0
		for _, o := range puzzle.RunAll(cmd.Context(), load, opts...) {
			if o.Err != nil {
				failed++
				a.logger.Error("Day failed", slog.Int("day", o.Day), slog.String("error", o.Err.Error()))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), o.Result)
		}
		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", errDaysFailed, failed, len(puzzle.Days()))
		}

		return nil
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day must be a number or \"all\", got %q", args[0])
	}
	if _, _, ok := puzzle.Lookup(day); !ok {
		return fmt.Errorf("%w: %d", puzzle.ErrUnknownDay, day)
	}
	input, err := load(day)
	if err != nil {
		return err
	}
	res, err := puzzle.Run(cmd.Context(), day, input, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)

	return nil
}

// readInput returns the puzzle input for day: --input wins over the config
// file, and "-" reads stdin.
func (a *app) readInput(stdin io.Reader, day int) (string, error) {
	path := a.inputPath
	if path == "" {
		path = a.cfg.InputFor(day)
	}
	a.logger.Debug("Reading input", slog.Int("day", day), slog.String("path", path))

	var (
		data []byte
		err  error
	)
	if path == config.Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read the input for day %d: %w", day, err)
	}

	return string(data), nil
}

func (a *app) list(cmd *cobra.Command, _ []string) error {
	for _, day := range puzzle.Days() {
		title, _, _ := puzzle.Lookup(day)
		fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", day, title)
	}

	return nil
}
