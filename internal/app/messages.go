package app

import (
	"time"

	"github.com/llehouerou/fader/internal/importer"
	"github.com/llehouerou/fader/internal/sched"
)

// TickMsg is sent every tickInterval to refresh the progress.
type TickMsg time.Time

// TaskFiredMsg carries a scheduled task whose timer expired. It is run on
// the Update goroutine.
type TaskFiredMsg struct {
	Task *sched.Task
}

// TrackEndMsg is sent when the primary handle plays its song to the end.
type TrackEndMsg struct{}

// ImportMode tells how imported songs join the playlist.
type ImportMode int

const (
	ImportAppend  ImportMode = iota // add after the existing songs
	ImportReplace                   // rebuild the playlist
	ImportStartup                   // CLI paths: replace, then start
)

// ImportDoneMsg carries the outcome of an import batch.
type ImportDoneMsg struct {
	Mode   ImportMode
	Result importer.Result
	Err    error
}

// FadeFrameMsg advances the cover fade animation.
type FadeFrameMsg struct{}
