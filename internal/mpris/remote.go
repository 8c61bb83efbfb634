// Package mpris exposes the player on the D-Bus session bus as an MPRIS
// media player, so media keys and desktop widgets can control it.
//
// D-Bus calls arrive on their own goroutines. Commands are forwarded as
// Requests through a Sender; queries read the last published Status.
package mpris

import (
	"sync"
	"time"

	"github.com/llehouerou/fader/internal/playlist"
)

// Command is a remote control action.
type Command int

const (
	CommandPlayPause Command = iota
	CommandPlay
	CommandPause
	CommandNext
	CommandPrevious
	CommandSeek        // move by Offset
	CommandSetPosition // jump to Position
	CommandSetShuffle  // set shuffle to Flag
	CommandSetRepeat   // set repeat to Flag
)

// Request is a command received from a remote client.
type Request struct {
	Command  Command
	Offset   time.Duration
	Position time.Duration
	Flag     bool
}

// Sender delivers requests to the goroutine owning the player.
type Sender func(Request)

// Status is the player state shown to remote clients.
type Status struct {
	Loaded   bool
	Playing  bool
	Shuffle  bool
	Repeat   bool
	Count    int // songs in the playlist
	Song     playlist.Song
	Position time.Duration
}

// state is shared between the publishing UI goroutine and D-Bus goroutines.
type state struct {
	mu     sync.RWMutex
	status Status
	send   Sender
}

func (s *state) publish(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

func (s *state) snapshot() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *state) setSender(send Sender) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

// dispatch forwards r, dropping it until a sender is set.
func (s *state) dispatch(r Request) {
	s.mu.RLock()
	send := s.send
	s.mu.RUnlock()
	if send != nil {
		send(r)
	}
}
