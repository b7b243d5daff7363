// Package config loads the optional aoc2021.yaml file that maps puzzle days
// to input files and tunes the runner.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the file read when --config is not given. Unlike an
// explicit path, it may be absent.
const DefaultPath = "aoc2021.yaml"

// Stdin is the input path that means "read standard input".
const Stdin = "-"

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded configuration file. Every field is optional.
type Config struct {
	// Inputs maps a day number to its puzzle input path.
	Inputs map[int]string `yaml:"inputs"`

	// Workers bounds the snailfish pairwise search; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Inputs:   map[int]string{},
		Workers:  0,
		LogLevel: "info",
	}
}

// Load reads and validates the YAML file at path. A missing DefaultPath
// yields Default(); any other missing file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if path == DefaultPath && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	if cfg.Inputs == nil {
		cfg.Inputs = map[int]string{}
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports ErrInvalidConfig for a negative worker count, an unknown
// log level or a non-positive day.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	for day, path := range c.Inputs {
		if day <= 0 {
			return fmt.Errorf("%w: day must be positive (%d)", ErrInvalidConfig, day)
		}
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: empty input path for day %d", ErrInvalidConfig, day)
		}
	}

	return nil
}

// Level converts LogLevel to a slog level. An empty level means info.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
}

// InputFor returns the input path configured for day, falling back to
// inputs/dayNN.txt.
func (c Config) InputFor(day int) string {
	if p, ok := c.Inputs[day]; ok {
		return p
	}

	return fmt.Sprintf("inputs/day%02d.txt", day)
}
