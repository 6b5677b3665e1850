// Package logger implements the logging port on top of zerolog.
package logger

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.trai.ch/swap/internal/core/ports"
	"go.trai.ch/zerr"
)

// Logger implements ports.Logger using a zerolog console writer.
type Logger struct {
	mu     sync.RWMutex
	logger zerolog.Logger
}

// New creates a Logger writing human-readable lines to stderr.
func New() ports.Logger {
	return &Logger{logger: newZerolog(os.Stderr, zerolog.InfoLevel)}
}

func newZerolog(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// SetOutput updates the logger's output destination, keeping the current level.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newZerolog(w, l.logger.GetLevel())
}

// SetLevel parses a level name such as "warn" and applies it.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid log level"), "level", level)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = l.logger.Level(lvl)
	return nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info().Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn().Msg(msg)
}

// Error logs an error together with the metadata attached along its chain.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error().Fields(metadata(err)).Err(err).Msg("operation failed")
}

// metadata collects zerr metadata from the whole chain. Outer values win.
func metadata(err error) map[string]any {
	fields := make(map[string]any)
	for err != nil {
		var zErr *zerr.Error
		if !errors.As(err, &zErr) {
			break
		}
		for k, v := range zErr.Metadata() {
			if _, ok := fields[k]; !ok {
				fields[k] = v
			}
		}
		err = zErr.Unwrap()
	}
	return fields
}
