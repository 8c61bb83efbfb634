package playback

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/fader/internal/playlist"
)

const (
	// popupLead is how long before the end of a song the popup is scheduled.
	popupLead = 10 * time.Second
	// popupWindow is the width of the scheduling window ending at popupLead.
	popupWindow = 500 * time.Millisecond
	// popupResetBefore cancels a pending popup while the position is below it.
	popupResetBefore = time.Second
)

// Releaser frees playable URLs the controller no longer references.
// *resource.Registry satisfies it.
type Releaser interface {
	Release(url string) bool
}

// Options configures a Controller.
type Options struct {
	PopupDelay       time.Duration // delay before showing the next-song popup
	PopupVisible     time.Duration // how long the popup stays fully visible
	PopupExit        time.Duration // exit phase before the popup is hidden
	ArtFade          time.Duration // cover fade duration on crossfade
	RestartThreshold time.Duration // Previous restarts the song past this position
	DefaultVolume    float64       // 0..1, restored on every load

	Shuffle bool
	Repeat  bool

	Rand     playlist.Rand // nil uses math/rand/v2
	Releaser Releaser      // may be nil
	Logger   *zerolog.Logger // nil uses the global zerolog logger
}

// DefaultOptions returns the built-in timings.
func DefaultOptions() Options {
	return Options{
		PopupDelay:       100 * time.Millisecond,
		PopupVisible:     5000 * time.Millisecond,
		PopupExit:        300 * time.Millisecond,
		ArtFade:          500 * time.Millisecond,
		RestartThreshold: 3 * time.Second,
		DefaultVolume:    1,
	}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PopupDelay <= 0 {
		o.PopupDelay = d.PopupDelay
	}
	if o.PopupVisible <= 0 {
		o.PopupVisible = d.PopupVisible
	}
	if o.PopupExit <= 0 {
		o.PopupExit = d.PopupExit
	}
	if o.ArtFade <= 0 {
		o.ArtFade = d.ArtFade
	}
	if o.RestartThreshold <= 0 {
		o.RestartThreshold = d.RestartThreshold
	}
	if o.DefaultVolume < 0 || o.DefaultVolume > 1 {
		o.DefaultVolume = d.DefaultVolume
	}
	if o.Rand == nil {
		o.Rand = globalRand{}
	}
	if o.Logger == nil {
		o.Logger = &log.Logger
	}
	return o
}
