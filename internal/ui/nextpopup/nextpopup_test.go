package nextpopup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/ui/cover"
)

func popup(phase playback.PopupPhase) playback.Popup {
	return playback.Popup{
		Phase: phase,
		Song:  playlist.Song{Title: "Second Song", Artist: "Band"},
	}
}

func TestRender_Hidden(t *testing.T) {
	assert.Empty(t, Render(popup(playback.PopupHidden), nil, 40))
}

func TestRender_Visible(t *testing.T) {
	art := cover.New(cover.Default(16), ArtWidth)

	out := ansi.Strip(Render(popup(playback.PopupVisible), art, 40))

	assert.Contains(t, out, label)
	assert.Contains(t, out, "Second Song")
	assert.Contains(t, out, "Band")
	// cover rows plus border
	assert.Len(t, strings.Split(out, "\n"), ArtWidth/2+2)
}

func TestRender_ExitingKeepsContent(t *testing.T) {
	out := ansi.Strip(Render(popup(playback.PopupExiting), nil, 40))

	assert.Contains(t, out, "Second Song")
}

func TestRender_TruncatesLongTitle(t *testing.T) {
	p := popup(playback.PopupVisible)
	p.Song.Title = strings.Repeat("long ", 30)

	out := Render(p, cover.New(cover.Default(16), ArtWidth), 40)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}
