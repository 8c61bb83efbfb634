package player

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/a.mp3", true},
		{"/music/a.MP3", true},
		{"/music/a.flac", true},
		{"/music/a.ogg", true},
		{"/music/a.oga", true},
		{"/music/a.wav", true},
		{"/music/a.m4a", false},
		{"/music/cover.jpg", false},
		{"/music/noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMusicFile(tt.path))
		})
	}
}

func TestDecodeFile_Unsupported(t *testing.T) {
	_, _, err := decodeFile("/music/a.m4a")

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLevelToVolume(t *testing.T) {
	assert.InDelta(t, 0.0, levelToVolume(1), 1e-9)
	assert.InDelta(t, -1.0, levelToVolume(0.5), 1e-9)
	assert.InDelta(t, -2.0, levelToVolume(0.25), 1e-9)
	assert.InDelta(t, -10.0, levelToVolume(0), 1e-9)
	assert.InDelta(t, 0.0, levelToVolume(2), 1e-9)
}

func TestClampLevel(t *testing.T) {
	assert.InDelta(t, 0.0, clampLevel(-1), 1e-9)
	assert.InDelta(t, 0.3, clampLevel(0.3), 1e-9)
	assert.InDelta(t, 1.0, clampLevel(1.5), 1e-9)
}

func TestSkipID3v2(t *testing.T) {
	// Header with a 5 byte tag body, followed by the FLAC magic.
	data := append([]byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5}, []byte("xxxxxfLaC")...)
	r := bytes.NewReader(data)

	require.NoError(t, skipID3v2(r))

	rest, _ := io.ReadAll(r)
	assert.Equal(t, "fLaC", string(rest))
}

func TestSkipID3v2_NoTag(t *testing.T) {
	r := bytes.NewReader([]byte("fLaC0123456789"))

	require.NoError(t, skipID3v2(r))

	rest, _ := io.ReadAll(r)
	assert.Equal(t, "fLaC0123456789", string(rest))
}

// countStreamer produces a fixed number of samples then returns ok=false.
type countStreamer struct {
	samples  int
	produced int
}

func (c *countStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	remaining := c.samples - c.produced
	if remaining <= 0 {
		return 0, false
	}
	n = min(len(samples), remaining)
	c.produced += n
	return n, true
}

func (c *countStreamer) Err() error { return nil }

func TestTrackStream_SignalsFinishedOnce(t *testing.T) {
	finished := make(chan struct{}, 1)
	s := &trackStream{src: &countStreamer{samples: 8}, finished: finished}
	buf := make([][2]float64, 5)

	n, ok := s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	n, ok = s.Stream(buf)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = s.Stream(buf)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Len(t, finished, 1)

	// Detached: the mixer drops it, no second signal.
	_, ok = s.Stream(buf)
	assert.False(t, ok)
	assert.Len(t, finished, 1)
}

func TestTrackStream_DetachedIsSilent(t *testing.T) {
	finished := make(chan struct{}, 1)
	s := &trackStream{src: &countStreamer{samples: 100}, finished: finished, detached: true}

	n, ok := s.Stream(make([][2]float64, 10))

	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Empty(t, finished)
}

type staticResolver map[string]string

func (r staticResolver) Resolve(url string) (string, error) {
	if p, ok := r[url]; ok {
		return p, nil
	}
	return "", errors.New("unknown")
}

func TestBeepHandle_Defaults(t *testing.T) {
	h := NewBeepHandle(staticResolver{})

	assert.Equal(t, Stopped, h.State())
	assert.Equal(t, "", h.Source())
	assert.Zero(t, h.Position())
	assert.Zero(t, h.Duration())
	assert.InDelta(t, 1.0, h.Volume(), 1e-9)
	assert.ErrorIs(t, h.Play(), ErrNoSource)
}

func TestBeepHandle_SetSourceErrors(t *testing.T) {
	h := NewBeepHandle(staticResolver{"song://x": "/does/not/exist.m4a"})

	assert.Error(t, h.SetSource("song://missing"))
	assert.ErrorIs(t, h.SetSource("song://x"), ErrUnsupportedFormat)
	assert.Equal(t, Stopped, h.State())
}

func TestBeepHandle_VolumeWithoutSource(t *testing.T) {
	h := NewBeepHandle(staticResolver{})

	h.SetVolume(0.4)
	assert.InDelta(t, 0.4, h.Volume(), 1e-9)

	h.SetVolume(3)
	assert.InDelta(t, 1.0, h.Volume(), 1e-9)
}
