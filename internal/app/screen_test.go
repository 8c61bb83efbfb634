package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/playlist"
)

func newClockedScreen(fade time.Duration) (*Screen, *time.Time) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewScreen(fade)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestScreen_RenderSong(t *testing.T) {
	s, now := newClockedScreen(time.Second)

	_, index, ok := s.Song()
	assert.False(t, ok)
	assert.Equal(t, -1, index)
	assert.Zero(t, s.titleElapsed())

	s.RenderSong(2, playlist.Song{Title: "A"}, false)
	*now = now.Add(3 * time.Second)

	song, index, ok := s.Song()
	assert.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, "A", song.Title)
	assert.Equal(t, 3*time.Second, s.titleElapsed())
}

func TestScreen_CoverDim(t *testing.T) {
	s, now := newClockedScreen(time.Second)
	assert.Zero(t, s.coverDim())

	s.RenderArtFade(true)
	assert.InDelta(t, 1.0, s.coverDim(), 1e-9)

	*now = now.Add(250 * time.Millisecond)
	assert.InDelta(t, 0.75, s.coverDim(), 1e-9)

	// a repeated start does not restart the fade
	s.RenderArtFade(true)
	assert.InDelta(t, 0.75, s.coverDim(), 1e-9)

	*now = now.Add(time.Second)
	assert.Zero(t, s.coverDim())
	assert.True(t, s.Fading())

	s.RenderArtFade(false)
	assert.False(t, s.Fading())
}

func TestScreen_SongWithoutTransitionStopsFade(t *testing.T) {
	s, _ := newClockedScreen(time.Second)
	s.RenderArtFade(true)

	s.RenderSong(0, playlist.Song{}, true)
	assert.True(t, s.Fading())

	s.RenderSong(1, playlist.Song{}, false)
	assert.False(t, s.Fading())
}

func TestScreen_StateCalls(t *testing.T) {
	s, _ := newClockedScreen(time.Second)

	s.RenderProgress(playback.Progress{Fraction: 0.5, Position: time.Minute, Duration: 2 * time.Minute})
	s.RenderPlaying(true)
	s.RenderModes(true, false)
	s.RenderPopup(playback.Popup{Phase: playback.PopupExiting})

	assert.Equal(t, time.Minute, s.progress.Position)
	assert.True(t, s.playing)
	assert.True(t, s.shuffle)
	assert.False(t, s.repeat)
	assert.Equal(t, playback.PopupExiting, s.Popup().Phase)
}

func TestScreen_ExpireError(t *testing.T) {
	s, now := newClockedScreen(time.Second)
	assert.False(t, s.expireError())

	s.RenderError("failed")
	*now = now.Add(errorTTL - time.Millisecond)
	assert.False(t, s.expireError())
	assert.Equal(t, "failed", s.Error())

	*now = now.Add(time.Millisecond)
	assert.True(t, s.expireError())
	assert.Empty(t, s.Error())
}
