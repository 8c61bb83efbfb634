// internal/player/interface.go
package player

import (
	"errors"
	"time"
)

var (
	// ErrUnsupportedFormat is returned for files the decoders cannot read.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoSource is returned when playing a handle that has no source.
	ErrNoSource = errors.New("no source loaded")
)

// Handle is an addressable, controllable audio playback instance.
//
// Several handles can play at the same time; their output is mixed. A
// handle signals on Finished each time its source plays to the end.
type Handle interface {
	SetSource(url string) error
	Source() string
	Play() error
	Pause()
	State() State
	Position() time.Duration
	SetPosition(pos time.Duration)
	Duration() time.Duration
	SetVolume(level float64)
	Volume() float64
	Finished() <-chan struct{}
	Close()
}

// Factory creates a new playback handle.
type Factory func() (Handle, error)

// Resolver turns a playable URL into a file path.
type Resolver interface {
	Resolve(url string) (string, error)
}

// Verify BeepHandle implements Handle at compile time.
var _ Handle = (*BeepHandle)(nil)
