// Package transition hands playback over from an ending song to the next
// one through a crossfade on a secondary playback handle.
package transition

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/llehouerou/fader/internal/player"
	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/sched"
)

var (
	// ErrBusy is returned while a previous transition has not finalized.
	ErrBusy = errors.New("transition already in progress")
	// ErrDeclined is returned when no transition was performed.
	// The caller should fall back to a plain advance.
	ErrDeclined = errors.New("transition declined")
)

// Callbacks receives the two UI hand-off points of a transition.
type Callbacks interface {
	// OnMetadataSwap is called as soon as the next song starts on the
	// secondary handle, so title, artist and art can update during the fade.
	OnMetadataSwap(index int, withTransition bool)
	// OnFinalize is called when the handoff window elapses. The receiver
	// promotes the secondary's source and position onto its primary handle.
	// The secondary is closed right after OnFinalize returns.
	OnFinalize(index int, secondary player.Handle)
}

// Config tunes the crossfade.
type Config struct {
	Window        time.Duration // handoff window
	Steps         int           // volume ramp steps over the window
	Curve         Curve
	DefaultVolume float64 // volume reached at the end of the ramp
}

// DefaultConfig returns the built-in crossfade settings.
func DefaultConfig() Config {
	return Config{
		Window:        2 * time.Second,
		Steps:         20,
		Curve:         Linear,
		DefaultVolume: 1,
	}
}

// Request describes the transition to run.
type Request struct {
	Queue     *playlist.Queue
	Shuffle   bool
	Callbacks Callbacks
}

// session is the ephemeral state of one running transition.
type session struct {
	handle    player.Handle
	target    int
	callbacks Callbacks
	ramp      *sched.Task
	window    *sched.Task
}

// Engine runs at most one transition at a time.
type Engine struct {
	cfg     Config
	sched   sched.Scheduler
	factory player.Factory
	rng     playlist.Rand
	logger  *zerolog.Logger
	session *session
}

// New creates a transition engine.
func New(cfg Config, s sched.Scheduler, factory player.Factory, rng playlist.Rand, logger *zerolog.Logger) *Engine {
	if cfg.Steps <= 0 {
		cfg.Steps = 1
	}
	if cfg.Curve == nil {
		cfg.Curve = Linear
	}
	if logger == nil {
		logger = &log.Logger
	}
	return &Engine{
		cfg:     cfg,
		sched:   s,
		factory: factory,
		rng:     rng,
		logger:  logger,
	}
}

// Active returns true while a transition is in progress.
func (e *Engine) Active() bool {
	return e.session != nil
}

// Target returns the index being transitioned to, or -1 when idle.
func (e *Engine) Target() int {
	if e.session == nil {
		return -1
	}
	return e.session.target
}

// Start begins a crossfade to the song after the queue's current one.
//
// It returns the target index. ErrBusy means a transition is already
// running and the trigger must be ignored; ErrDeclined (possibly wrapped)
// means nothing was started and nothing was recorded in the history.
func (e *Engine) Start(req Request) (int, error) {
	if e.session != nil {
		return -1, ErrBusy
	}

	q := req.Queue
	if q == nil || q.Len() < 2 || q.Current() == nil {
		return -1, ErrDeclined
	}

	current := q.CurrentIndex()
	target := q.Upcoming(req.Shuffle, e.rng)
	song := q.Song(target)
	if song == nil || song.URL == "" || target == current {
		return -1, ErrDeclined
	}

	h, err := e.factory()
	if err != nil {
		return -1, fmt.Errorf("%w: create handle: %w", ErrDeclined, err)
	}
	h.SetVolume(0)
	if err := h.SetSource(song.URL); err != nil {
		h.Close()
		return -1, fmt.Errorf("%w: load %s: %w", ErrDeclined, song.URL, err)
	}
	if err := h.Play(); err != nil {
		h.Close()
		return -1, fmt.Errorf("%w: play %s: %w", ErrDeclined, song.URL, err)
	}

	q.History().Push(current)

	s := &session{
		handle:    h,
		target:    target,
		callbacks: req.Callbacks,
	}
	e.session = s
	e.logger.Debug().Int("from", current).Int("to", target).Dur("window", e.cfg.Window).Msg("transition started")

	s.callbacks.OnMetadataSwap(target, true)

	// The callback may have aborted us.
	if e.session != s {
		return target, nil
	}
	e.scheduleStep(s, 1)
	s.window = e.sched.After(e.cfg.Window, func() { e.finalize(s) })
	return target, nil
}

// Abort drops a running transition without finalizing it.
// User actions never call this; it only serves shutdown.
func (e *Engine) Abort() {
	s := e.session
	if s == nil {
		return
	}
	s.ramp.Cancel()
	s.window.Cancel()
	s.handle.Close()
	e.session = nil
	e.logger.Debug().Int("to", s.target).Msg("transition aborted")
}

// scheduleStep ramps the secondary volume one step at a time.
func (e *Engine) scheduleStep(s *session, step int) {
	interval := e.cfg.Window / time.Duration(e.cfg.Steps)
	s.ramp = e.sched.After(interval, func() {
		if e.session != s {
			return
		}
		if step >= e.cfg.Steps {
			s.handle.SetVolume(e.cfg.DefaultVolume)
			return
		}
		progress := float64(step) / float64(e.cfg.Steps)
		s.handle.SetVolume(e.cfg.DefaultVolume * e.cfg.Curve(progress))
		e.scheduleStep(s, step+1)
	})
}

// finalize hands the secondary over and always clears the session.
func (e *Engine) finalize(s *session) {
	if e.session != s {
		return
	}
	defer func() {
		s.handle.Close()
		if e.session == s {
			e.session = nil
		}
		e.logger.Debug().Int("to", s.target).Msg("transition finalized")
	}()

	s.ramp.Cancel()
	s.handle.SetVolume(e.cfg.DefaultVolume)
	s.callbacks.OnFinalize(s.target, s.handle)
}
