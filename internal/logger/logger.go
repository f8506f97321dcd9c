// Package logger configures the process-wide zerolog logger used by the
// translation pipeline for structured progress output.
//
// CLI result output (tables, JSON results) stays on stdout via fmt; the
// logger writes to stderr so the two streams never interleave.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Config holds the configuration for the logger.
type Config struct {
	// Level is the minimum level to emit ("debug", "info", "warn", ...).
	// Unparseable values fall back to info.
	Level string

	// Pretty enables the human-oriented console writer. JSON lines are
	// emitted when false.
	Pretty bool
}

// Init initializes the global logger. Safe to call more than once; only
// the first call takes effect.
func Init(cfg Config) {
	once.Do(func() {
		level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			level = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		var output io.Writer = os.Stderr
		if cfg.Pretty {
			output = zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "15:04:05",
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// Get returns the logger instance.
func Get() *zerolog.Logger {
	return &logger
}

// Debug starts a debug-level event on the global logger.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info starts an info-level event on the global logger.
func Info() *zerolog.Event {
	return logger.Info()
}

// Warn starts a warn-level event on the global logger.
func Warn() *zerolog.Event {
	return logger.Warn()
}

// Error starts an error-level event on the global logger.
func Error() *zerolog.Event {
	return logger.Error()
}
