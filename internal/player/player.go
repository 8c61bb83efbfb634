package player

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// initSpeaker initializes the shared speaker with the first track's rate.
// Later tracks with another rate are resampled.
func initSpeaker(rate beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = rate
	speakerInitialized = true
	return nil
}

// BeepHandle plays one source through the shared beep speaker.
// Handles are mixed, so two of them can play at once during a crossfade.
//
// A handle is driven from a single goroutine; only the audio callback runs
// elsewhere, and it touches shared fields under speaker.Lock.
type BeepHandle struct {
	resolver Resolver

	source   string
	state    State
	level    float64
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	out      *trackStream
	finished chan struct{}
}

// NewBeepHandle creates a handle resolving URLs with resolver.
func NewBeepHandle(resolver Resolver) *BeepHandle {
	return &BeepHandle{
		resolver: resolver,
		state:    Stopped,
		level:    1,
		finished: make(chan struct{}, 1),
	}
}

// NewBeepFactory returns a Factory creating beep handles.
func NewBeepFactory(resolver Resolver) Factory {
	return func() (Handle, error) {
		return NewBeepHandle(resolver), nil
	}
}

// SetSource points the handle at url, stopping the previous source.
// The handle is left paused at the start of the new source.
func (h *BeepHandle) SetSource(url string) error {
	h.release()
	h.drainFinished()

	path, err := h.resolver.Resolve(url)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", url, err)
	}

	streamer, format, err := decodeFile(path)
	if err != nil {
		return err
	}

	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		return err
	}

	// Resample if the track's sample rate differs from the speaker's
	var playStreamer beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		playStreamer = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}

	h.streamer = streamer
	h.format = format
	h.ctrl = &beep.Ctrl{Streamer: playStreamer, Paused: true}
	h.volume = &effects.Volume{Streamer: h.ctrl, Base: 2}
	h.applyVolume()
	h.source = url
	h.state = Paused
	return nil
}

// Source returns the URL of the loaded source.
func (h *BeepHandle) Source() string {
	return h.source
}

// Play starts or resumes playback.
func (h *BeepHandle) Play() error {
	if h.state == Stopped || h.ctrl == nil {
		return ErrNoSource
	}

	speaker.Lock()
	attached := h.out != nil && !h.out.detached
	h.ctrl.Paused = false
	speaker.Unlock()

	if !attached {
		h.out = &trackStream{src: h.volume, finished: h.finished}
		speaker.Play(h.out)
	}
	h.state = Playing
	return nil
}

// Pause pauses playback.
func (h *BeepHandle) Pause() {
	if h.state != Playing || h.ctrl == nil {
		return
	}
	speaker.Lock()
	h.ctrl.Paused = true
	speaker.Unlock()
	h.state = Paused
}

// State returns the handle state.
// A source that played to the end reports Paused.
func (h *BeepHandle) State() State {
	if h.state == Playing && h.out != nil {
		speaker.Lock()
		ended := h.out.detached
		speaker.Unlock()
		if ended {
			return Paused
		}
	}
	return h.state
}

// Position returns the current playback position.
func (h *BeepHandle) Position() time.Duration {
	if h.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := h.streamer.Position()
	speaker.Unlock()
	return h.format.SampleRate.D(pos)
}

// SetPosition seeks to pos, clamped to the source bounds.
func (h *BeepHandle) SetPosition(pos time.Duration) {
	if h.streamer == nil {
		return
	}
	h.drainFinished()

	speaker.Lock()
	defer speaker.Unlock()
	n := h.format.SampleRate.N(max(pos, 0))
	n = min(n, max(h.streamer.Len()-1, 0))
	_ = h.streamer.Seek(n)
}

// Duration returns the length of the loaded source.
func (h *BeepHandle) Duration() time.Duration {
	if h.streamer == nil {
		return 0
	}
	return h.format.SampleRate.D(h.streamer.Len())
}

// SetVolume sets the volume level (0.0 to 1.0).
func (h *BeepHandle) SetVolume(level float64) {
	h.level = clampLevel(level)
	h.applyVolume()
}

// Volume returns the current volume level (0.0 to 1.0).
func (h *BeepHandle) Volume() float64 {
	return h.level
}

// Finished signals each time the source plays to its end.
func (h *BeepHandle) Finished() <-chan struct{} {
	return h.finished
}

// Close stops playback and releases the source.
func (h *BeepHandle) Close() {
	h.release()
	h.drainFinished()
}

func (h *BeepHandle) applyVolume() {
	if h.volume == nil {
		return
	}
	speaker.Lock()
	h.volume.Volume = levelToVolume(h.level)
	h.volume.Silent = h.level <= 0
	speaker.Unlock()
}

// release detaches the current source from the speaker and closes it.
func (h *BeepHandle) release() {
	if h.out != nil {
		speaker.Lock()
		h.out.detached = true
		speaker.Unlock()
		h.out = nil
	}
	if h.streamer != nil {
		h.streamer.Close()
		h.streamer = nil
	}
	h.ctrl = nil
	h.volume = nil
	h.source = ""
	h.state = Stopped
}

func (h *BeepHandle) drainFinished() {
	select {
	case <-h.finished:
	default:
	}
}

// trackStream is what the speaker mixes for one handle.
// Once detached it reports exhaustion so the mixer drops it.
// Fields are guarded by speaker.Lock.
type trackStream struct {
	src      beep.Streamer
	detached bool
	finished chan<- struct{}
}

// Stream implements beep.Streamer.
func (s *trackStream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.detached {
		return 0, false
	}
	n, ok = s.src.Stream(samples)
	if !ok {
		s.detached = true
		select {
		case s.finished <- struct{}{}:
		default:
		}
	}
	return n, ok
}

// Err implements beep.Streamer.
func (s *trackStream) Err() error {
	return s.src.Err()
}
