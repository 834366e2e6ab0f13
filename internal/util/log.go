package util

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the console logger. An unknown level falls back to
// info rather than failing the command.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	cw := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}

// WithRunFile returns a logger that also appends to the given file,
// plus the handle the caller must close when the run ends.
func WithRunFile(base zerolog.Logger, path string) (zerolog.Logger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return base, nil, err
	}
	cw := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	w := zerolog.MultiLevelWriter(cw, f)
	return base.Output(w), f, nil
}
