//go:build !linux

package mpris

import "github.com/rs/zerolog"

// Adapter only records the status on platforms without D-Bus.
type Adapter struct {
	state *state
}

// New returns an adapter that never joins a bus.
func New(_ *zerolog.Logger) *Adapter {
	return &Adapter{state: &state{}}
}

// Listen stores send; no remote client can call it.
func (a *Adapter) Listen(send Sender) { a.state.setSender(send) }

// Publish records the status.
func (a *Adapter) Publish(st Status) { a.state.publish(st) }

// Close is a no-op.
func (a *Adapter) Close() error { return nil }
