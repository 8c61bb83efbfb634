//go:build !windows

// Package stderr captures output that C libraries (ALSA through the audio
// backend) write directly to file descriptor 2, bypassing os.Stderr, and
// forwards it to the log so it cannot corrupt the TUI.
package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output into logger.
// Must be called early in main(), before the audio device is opened.
// Returns an error if capture cannot be set up; the program can continue
// without it (output then goes to the original stderr).
func Start(logger *zerolog.Logger) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect fd 2 to the pipe's write end
	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go func() {
		defer close(done)
		forward(pipeRead, logger)
	}()

	return nil
}

// forward logs each non-blank line read from r until EOF.
func forward(r io.Reader, logger *zerolog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			logger.Warn().Str("line", line).Msg("stderr")
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Used for fatal errors that must be visible after the TUI exits.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr and waits for buffered lines to be logged.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)
	origStderr = 0

	// The read side sees EOF once every write end is closed.
	pipeWrite.Close()
	<-done
	pipeRead.Close()

	started = false
}
