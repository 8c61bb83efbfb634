// Package playback drives the primary playback handle from user actions,
// time ticks and end-of-track notifications.
//
// A Controller is not safe for concurrent use. It is owned by the UI
// goroutine, which also runs the scheduler's fired tasks.
package playback

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/player"
	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/sched"
	"github.com/llehouerou/fader/internal/transition"
)

// Controller owns the playlist, the history and the primary handle.
type Controller struct {
	primary player.Handle
	engine  *transition.Engine
	sched   sched.Scheduler
	render  Renderer
	queue   *playlist.Queue
	opts    Options
	logger  *zerolog.Logger

	playing bool
	shuffle bool
	repeat  bool

	// popupTask stays set after it fires so a song gets a single popup.
	// It is cleared when the position drops below popupResetBefore or a
	// new song is loaded.
	popupTask *sched.Task
	hideTask  *sched.Task
	fadeTask  *sched.Task

	closed bool
}

// New creates a controller around the primary handle.
func New(primary player.Handle, engine *transition.Engine, s sched.Scheduler, r Renderer, opts Options) *Controller {
	opts = opts.withDefaults()
	if r == nil {
		r = NopRenderer{}
	}
	return &Controller{
		primary: primary,
		engine:  engine,
		sched:   s,
		render:  r,
		queue:   playlist.NewQueue(),
		opts:    opts,
		logger:  opts.Logger,
		shuffle: opts.Shuffle,
		repeat:  opts.Repeat,
	}
}

// State returns a snapshot of the playback flags.
func (c *Controller) State() State {
	return State{
		Playing: c.playing,
		Shuffle: c.shuffle,
		Repeat:  c.repeat,
		Index:   c.queue.CurrentIndex(),
	}
}

// Phase returns the current playback phase.
func (c *Controller) Phase() Phase {
	return c.State().Phase()
}

// Songs returns a copy of the playlist.
func (c *Controller) Songs() []playlist.Song {
	return c.queue.Songs()
}

// History returns the visited indices, oldest first.
func (c *Controller) History() []int {
	return c.queue.History().Entries()
}

// Transitioning returns true while a crossfade is running.
func (c *Controller) Transitioning() bool {
	return c.engine.Active()
}

// Finished signals when the primary handle reaches the end of its source.
func (c *Controller) Finished() <-chan struct{} {
	return c.primary.Finished()
}

// Add appends songs to the playlist. The current song is unchanged.
func (c *Controller) Add(songs ...playlist.Song) {
	if c.closed || len(songs) == 0 {
		return
	}
	c.queue.Add(songs...)
	c.logger.Debug().Int("count", len(songs)).Int("total", c.queue.Len()).Msg("songs added")
}

// Replace rebuilds the playlist from songs and resets the history.
// Playback is paused and the URLs of discarded songs are released.
// Call Start to load the first song.
func (c *Controller) Replace(songs ...playlist.Song) {
	if c.closed {
		return
	}
	c.engine.Abort()
	c.cancelTimers()
	c.popupTask = nil
	c.render.RenderPopup(Popup{Phase: PopupHidden})
	c.render.RenderArtFade(false)

	c.primary.Pause()
	c.setPlaying(false)

	discarded := c.queue.Replace(songs...)
	kept := make(map[string]struct{}, len(songs))
	for _, s := range songs {
		kept[s.URL] = struct{}{}
	}
	released := 0
	for _, s := range discarded {
		if _, ok := kept[s.URL]; ok {
			continue
		}
		if c.release(s.URL) {
			released++
		}
	}
	c.logger.Debug().Int("count", len(songs)).Int("released", released).Msg("playlist replaced")
}

// Start prepares covers and loads the first playable song, paused.
// Returns false if no song has a playable URL.
func (c *Controller) Start() bool {
	if c.closed {
		return false
	}
	for i := range c.queue.Len() {
		s := c.queue.Song(i)
		if !s.HasEmbeddedCover {
			s.Cover = nil
			s.CoverMIME = ""
		}
	}

	first := c.queue.Playlist().IndexOf(func(s playlist.Song) bool {
		return s.URL != ""
	})
	if first < 0 {
		c.logger.Warn().Int("count", c.queue.Len()).Msg("no playable song to start")
		return false
	}

	c.LoadSong(first)
	c.render.RenderModes(c.shuffle, c.repeat)
	c.render.RenderPlaying(c.playing)
	return true
}

// LoadSong points the primary handle at the song at index.
// Invalid indices are ignored. Playback continues if it was playing.
func (c *Controller) LoadSong(index int) {
	if c.closed {
		return
	}
	song := c.queue.JumpTo(index)
	if song == nil {
		return
	}

	c.resetPopupSchedule()
	c.render.RenderSong(index, *song, false)
	c.render.RenderProgress(Progress{})

	if song.URL == "" {
		c.logger.Error().Int("index", index).Str("path", song.Path).Msg("song has no playable url")
		c.setPlaying(false)
		return
	}
	if err := c.primary.SetSource(song.URL); err != nil {
		c.logger.Error().Err(err).Int("index", index).Str("path", song.Path).Msg("load song failed")
		c.render.RenderError(errmsg.FormatWith(errmsg.OpPlaybackLoad, song.Title, err))
		c.setPlaying(false)
		return
	}
	c.primary.SetVolume(c.opts.DefaultVolume)

	if c.playing {
		c.play()
	}
}

// TogglePlayPause flips between playing and paused.
func (c *Controller) TogglePlayPause() {
	if !c.navigable() || c.queue.Current() == nil {
		return
	}
	if c.playing {
		c.primary.Pause()
		c.setPlaying(false)
		return
	}
	c.setPlaying(true)
	c.play()
}

// Next records the current song in the history and plays the next one.
func (c *Controller) Next() {
	if !c.navigable() {
		return
	}
	next := c.queue.Advance(c.shuffle, c.opts.Rand)
	c.loadAndPlay(next)
}

// Previous restarts the current song when past the restart threshold,
// otherwise plays the previous song.
func (c *Controller) Previous() {
	if !c.navigable() {
		return
	}
	if c.primary.Position() > c.opts.RestartThreshold {
		c.primary.SetPosition(0)
		c.renderProgress(0, c.primary.Duration())
		return
	}
	prev := c.queue.Back()
	c.loadAndPlay(prev)
}

// JumpTo plays the song at index without touching the history.
func (c *Controller) JumpTo(index int) {
	if !c.navigable() || c.queue.Song(index) == nil {
		return
	}
	c.loadAndPlay(index)
}

// ToggleShuffle flips shuffle mode.
func (c *Controller) ToggleShuffle() {
	c.shuffle = !c.shuffle
	c.render.RenderModes(c.shuffle, c.repeat)
}

// ToggleRepeat flips repeat mode.
func (c *Controller) ToggleRepeat() {
	c.repeat = !c.repeat
	c.render.RenderModes(c.shuffle, c.repeat)
}

// OnTimeAdvance updates the displayed progress and schedules the
// next-song popup near the end of the song.
func (c *Controller) OnTimeAdvance(current, duration time.Duration) {
	if c.closed || duration <= 0 {
		return
	}
	c.renderProgress(current, duration)
	c.queue.Playlist().SetDuration(c.queue.CurrentIndex(), duration)

	remaining := duration - current
	if remaining <= popupLead && remaining > popupLead-popupWindow &&
		c.queue.Len() > 1 && c.popupTask == nil {
		c.popupTask = c.sched.After(c.opts.PopupDelay, c.showPopup)
	}

	if current < popupResetBefore {
		c.resetPopupSchedule()
	}
}

// Tick reads the primary handle's position. It does nothing while paused
// or during a crossfade, when the current index already names the incoming
// song but the primary still plays the outgoing one.
func (c *Controller) Tick() {
	if !c.playing || c.engine.Active() {
		return
	}
	c.OnTimeAdvance(c.primary.Position(), c.primary.Duration())
}

// OnTrackEnd handles the primary handle reaching the end of its song.
func (c *Controller) OnTrackEnd() {
	if c.closed || c.queue.Current() == nil {
		return
	}
	if c.repeat {
		c.primary.SetPosition(0)
		c.play()
		return
	}

	target, err := c.engine.Start(transition.Request{
		Queue:     c.queue,
		Shuffle:   c.shuffle,
		Callbacks: handoff{c},
	})
	switch {
	case err == nil:
		c.logger.Debug().Int("to", target).Msg("crossfade started")
	case errors.Is(err, transition.ErrBusy):
		c.logger.Debug().Msg("track end ignored during crossfade")
	default:
		c.logger.Debug().Err(err).Msg("crossfade declined, advancing")
		c.Next()
	}
}

// OnSeekRequest seeks to a fraction of the current song.
// It is ignored while the duration is unknown.
func (c *Controller) OnSeekRequest(fraction float64) {
	if !c.navigable() {
		return
	}
	d := c.primary.Duration()
	if d <= 0 {
		return
	}
	fraction = max(0, min(fraction, 1))
	pos := time.Duration(fraction * float64(d))
	c.primary.SetPosition(pos)
	c.renderProgress(pos, d)
}

// Seek moves the position by delta, clamped to the song.
func (c *Controller) Seek(delta time.Duration) {
	if !c.navigable() {
		return
	}
	d := c.primary.Duration()
	if d <= 0 {
		return
	}
	pos := max(0, min(c.primary.Position()+delta, d))
	c.primary.SetPosition(pos)
	c.renderProgress(pos, d)
}

// Close stops playback and releases every URL the playlist references.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.engine.Abort()
	c.cancelTimers()
	c.primary.Close()
	c.playing = false
	for _, s := range c.queue.Songs() {
		c.release(s.URL)
	}
}

// navigable reports whether user navigation is accepted.
// A running crossfade cannot be interrupted.
func (c *Controller) navigable() bool {
	return !c.closed && !c.queue.IsEmpty() && !c.engine.Active()
}

func (c *Controller) loadAndPlay(index int) {
	c.playing = true
	c.LoadSong(index)
	c.render.RenderPlaying(c.playing)
}

// play starts the primary handle. Failures are reported, not fatal.
func (c *Controller) play() {
	if err := c.primary.Play(); err != nil {
		c.logger.Error().Err(err).Str("source", c.primary.Source()).Msg("playback start failed")
		c.render.RenderError(errmsg.Format(errmsg.OpPlaybackStart, err))
	}
}

func (c *Controller) setPlaying(playing bool) {
	c.playing = playing
	c.render.RenderPlaying(playing)
}

func (c *Controller) renderProgress(pos, d time.Duration) {
	p := Progress{Position: pos, Duration: d}
	if d > 0 {
		p.Fraction = max(0, min(float64(pos)/float64(d), 1))
	}
	c.render.RenderProgress(p)
}

func (c *Controller) showPopup() {
	if c.queue.Len() <= 1 {
		return
	}
	next := c.queue.Upcoming(c.shuffle, c.opts.Rand)
	song := c.queue.Song(next)
	if song == nil {
		return
	}
	popup := Popup{Phase: PopupVisible, Song: *song}

	c.hideTask.Cancel()
	c.render.RenderPopup(popup)
	c.hideTask = c.sched.After(c.opts.PopupVisible, func() {
		popup.Phase = PopupExiting
		c.render.RenderPopup(popup)
		c.hideTask = c.sched.After(c.opts.PopupExit, func() {
			c.render.RenderPopup(Popup{Phase: PopupHidden})
		})
	})
}

func (c *Controller) resetPopupSchedule() {
	c.popupTask.Cancel()
	c.popupTask = nil
}

func (c *Controller) cancelTimers() {
	c.popupTask.Cancel()
	c.hideTask.Cancel()
	c.fadeTask.Cancel()
}

func (c *Controller) release(url string) bool {
	if url == "" || c.opts.Releaser == nil {
		return false
	}
	return c.opts.Releaser.Release(url)
}
