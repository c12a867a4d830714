package config

import (
	"github.com/cockroachdb/errors"

	"github.com/dshills/parsebuf/internal/logging"
	"github.com/dshills/parsebuf/internal/unitenc"
)

// MaxChunkSize bounds input.chunk_size.
const MaxChunkSize = 16 << 20

// Config is the complete parsebuf configuration.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Driver  DriverConfig  `toml:"driver"`
	Logging LoggingConfig `toml:"logging"`
}

// InputConfig controls how source bytes are decoded.
type InputConfig struct {
	// Encoding is a WHATWG encoding label. Empty means UTF-8. A byte-order
	// mark in the input overrides it.
	Encoding string `toml:"encoding"`
	// ChunkSize is the number of bytes read per append.
	ChunkSize int `toml:"chunk_size"`
}

// DriverConfig controls the incremental driver.
type DriverConfig struct {
	// MaxSnapshots is how many earlier buffers the driver retains. Zero keeps
	// none.
	MaxSnapshots int `toml:"max_snapshots"`
	// Verify checks every retained snapshot against the final buffer.
	Verify bool `toml:"verify"`
	// VerifyWorkers bounds concurrent snapshot checks.
	VerifyWorkers int `toml:"verify_workers"`
	// Graphemes enables grapheme cluster counting of the final text.
	Graphemes bool `toml:"graphemes"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			Encoding:  "utf-8",
			ChunkSize: unitenc.DefaultChunkSize,
		},
		Driver: DriverConfig{
			MaxSnapshots:  16,
			VerifyWorkers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and reports all problems together. The
// result matches ErrValidationFailed under errors.Is.
func (c Config) Validate() error {
	var errs error
	add := func(path, msg string, value any) {
		errs = errors.CombineErrors(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if _, err := unitenc.Lookup(c.Input.Encoding); err != nil {
		add("input.encoding", "unknown encoding", c.Input.Encoding)
	}
	if c.Input.ChunkSize < 1 || c.Input.ChunkSize > MaxChunkSize {
		add("input.chunk_size", "must be between 1 and 16777216", c.Input.ChunkSize)
	}
	if c.Driver.MaxSnapshots < 0 {
		add("driver.max_snapshots", "must not be negative", c.Driver.MaxSnapshots)
	}
	if c.Driver.VerifyWorkers < 1 {
		add("driver.verify_workers", "must be at least 1", c.Driver.VerifyWorkers)
	}
	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	return errs
}

// LogLevel returns the configured level, defaulting to info.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}
