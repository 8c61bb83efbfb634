package app

import (
	"time"

	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/playlist"
)

// errorTTL is how long an error stays in the status line.
const errorTTL = 5 * time.Second

// Screen records what the controller asked to display. The view reads it
// on every frame. It is written and read on the Update goroutine only.
type Screen struct {
	now     func() time.Time
	artFade time.Duration

	index     int
	song      playlist.Song
	hasSong   bool
	songSince time.Time

	fading    bool
	fadeSince time.Time

	progress playback.Progress
	playing  bool
	shuffle  bool
	repeat   bool
	popup    playback.Popup

	err      string
	errSince time.Time
}

var _ playback.Renderer = (*Screen)(nil)

// NewScreen creates an empty screen. artFade is the cover fade duration.
func NewScreen(artFade time.Duration) *Screen {
	return &Screen{now: time.Now, artFade: artFade, index: -1}
}

// RenderSong implements playback.Renderer.
func (s *Screen) RenderSong(index int, song playlist.Song, withTransition bool) {
	s.index = index
	s.song = song
	s.hasSong = true
	s.songSince = s.now()
	if !withTransition {
		s.fading = false
	}
}

// RenderArtFade implements playback.Renderer.
func (s *Screen) RenderArtFade(fading bool) {
	if fading && !s.fading {
		s.fadeSince = s.now()
	}
	s.fading = fading
}

// RenderProgress implements playback.Renderer.
func (s *Screen) RenderProgress(p playback.Progress) { s.progress = p }

// RenderPlaying implements playback.Renderer.
func (s *Screen) RenderPlaying(playing bool) { s.playing = playing }

// RenderModes implements playback.Renderer.
func (s *Screen) RenderModes(shuffle, repeat bool) {
	s.shuffle = shuffle
	s.repeat = repeat
}

// RenderPopup implements playback.Renderer.
func (s *Screen) RenderPopup(p playback.Popup) { s.popup = p }

// RenderError implements playback.Renderer.
func (s *Screen) RenderError(msg string) {
	s.err = msg
	s.errSince = s.now()
}

// Song returns the displayed song and its playlist index.
func (s *Screen) Song() (playlist.Song, int, bool) {
	return s.song, s.index, s.hasSong
}

// Error returns the displayed error, "" when none.
func (s *Screen) Error() string { return s.err }

// Popup returns the displayed popup.
func (s *Screen) Popup() playback.Popup { return s.popup }

// Fading reports whether the cover fade is running.
func (s *Screen) Fading() bool { return s.fading }

// titleElapsed is the time since the song was shown, for the marquee.
func (s *Screen) titleElapsed() time.Duration {
	if !s.hasSong {
		return 0
	}
	return s.now().Sub(s.songSince)
}

// coverDim returns how much the cover is dimmed: fully at the fade start,
// clear at the end.
func (s *Screen) coverDim() float64 {
	if !s.fading || s.artFade <= 0 {
		return 0
	}
	elapsed := s.now().Sub(s.fadeSince)
	if elapsed >= s.artFade {
		return 0
	}
	return 1 - float64(elapsed)/float64(s.artFade)
}

// expireError clears an error older than errorTTL. It returns true if the
// error was cleared.
func (s *Screen) expireError() bool {
	if s.err == "" || s.now().Sub(s.errSince) < errorTTL {
		return false
	}
	s.err = ""
	return true
}
