// internal/player/state.go
package player

// State represents the playback state of a handle.
//
//	┌──────────┐   SetSource   ┌──────────┐
//	│  Stopped │ ─────────────▶│  Paused  │
//	└──────────┘               └──────────┘
//	     ▲                       │      ▲
//	     │ Close           Play  │      │ Pause / end of source
//	     │                       ▼      │
//	     │                     ┌──────────┐
//	     └─────────────────────│  Playing │
//	                           └──────────┘
//
// SetSource always lands in Paused: pointing a handle at a new source
// stops the old one, the caller decides whether to play.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
