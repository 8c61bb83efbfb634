// internal/playback/state.go
package playback

// Phase is the controller's coarse playback phase.
type Phase int

const (
	PhaseIdle Phase = iota // nothing loaded
	PhaseLoadedPaused
	PhaseLoadedPlaying
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseLoadedPaused:
		return "LoadedPaused"
	case PhaseLoadedPlaying:
		return "LoadedPlaying"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true once a song has been loaded.
func (p Phase) IsLoaded() bool {
	return p == PhaseLoadedPaused || p == PhaseLoadedPlaying
}

// State is a snapshot of the controller's playback flags.
type State struct {
	Playing bool
	Shuffle bool
	Repeat  bool
	Index   int // -1 if nothing loaded
}

// Phase derives the playback phase from the snapshot.
func (s State) Phase() Phase {
	switch {
	case s.Index < 0:
		return PhaseIdle
	case s.Playing:
		return PhaseLoadedPlaying
	default:
		return PhaseLoadedPaused
	}
}
