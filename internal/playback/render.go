package playback

import (
	"time"

	"github.com/llehouerou/fader/internal/playlist"
)

// Progress is the displayed position of the current song.
type Progress struct {
	Fraction float64 // 0..1
	Position time.Duration
	Duration time.Duration // zero while unknown
}

// PopupPhase is the visibility of the next-song popup.
type PopupPhase int

const (
	PopupHidden PopupPhase = iota
	PopupVisible
	PopupExiting // fading out, hidden after the exit delay
)

// Popup announces the upcoming song.
type Popup struct {
	Phase PopupPhase
	Song  playlist.Song
}

// Renderer is the surface the controller draws on.
// Every call is made from the goroutine owning the controller.
type Renderer interface {
	// RenderSong shows the song's metadata and cover.
	// withTransition is true during a crossfade handoff.
	RenderSong(index int, song playlist.Song, withTransition bool)
	// RenderArtFade toggles the cover fade effect.
	RenderArtFade(fading bool)
	RenderProgress(p Progress)
	RenderPlaying(playing bool)
	RenderModes(shuffle, repeat bool)
	RenderPopup(p Popup)
	// RenderError surfaces a user-facing error message.
	RenderError(msg string)
}

// NopRenderer discards every render call.
type NopRenderer struct{}

func (NopRenderer) RenderSong(int, playlist.Song, bool) {}
func (NopRenderer) RenderArtFade(bool)                   {}
func (NopRenderer) RenderProgress(Progress)              {}
func (NopRenderer) RenderPlaying(bool)                   {}
func (NopRenderer) RenderModes(bool, bool)               {}
func (NopRenderer) RenderPopup(Popup)                    {}
func (NopRenderer) RenderError(string)                   {}

var _ Renderer = NopRenderer{}
