// Package logging sets up the process logger. The TUI owns stdout, so logs go
// to a file under the XDG state directory.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Path returns the log file location, creating its parent directory.
func Path() (string, error) {
	return xdg.StateFile(filepath.Join("fader", "fader.log"))
}

// Open appends to the log file at path and installs the logger as the global
// zerolog logger. The returned closer closes the file.
func Open(path string, debug bool) (*zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := New(f, debug)
	log.Logger = *logger
	return logger, f, nil
}

// New returns a logger writing JSON lines with timestamps to w.
func New(w io.Writer, debug bool) *zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &logger
}

// Discard returns a logger that drops everything.
func Discard() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
