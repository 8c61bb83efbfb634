// Package nextpopup renders the "up next" card shown near the end of a song.
package nextpopup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/ui/cover"
	"github.com/llehouerou/fader/internal/ui/render"
	"github.com/llehouerou/fader/internal/ui/styles"
)

const (
	// ArtWidth is the cover width in cells; the cover is ArtWidth/2 rows.
	ArtWidth = 8
	label    = "Up next"
	// exitDim is how far the card fades while exiting.
	exitDim = 0.6
)

// Render returns the popup card, or "" when hidden. art may be nil.
// width is the maximum card width including the border.
func Render(p playback.Popup, art *cover.Art, width int) string {
	if p.Phase == playback.PopupHidden {
		return ""
	}
	textWidth := max(width-ArtWidth-5, 4) // border, padding and gap

	s := styles.T().S()
	labelStyle, titleStyle, artistStyle := s.Muted, s.Title, s.Muted
	dim := 0.0
	border := styles.T().BorderFocus
	if p.Phase == playback.PopupExiting {
		labelStyle, titleStyle, artistStyle = s.Subtle, s.Subtle, s.Subtle
		dim = exitDim
		border = styles.T().Border
	}

	text := strings.Join([]string{
		labelStyle.Render(label),
		titleStyle.Render(render.Truncate(p.Song.Title, textWidth)),
		artistStyle.Render(render.Truncate(p.Song.Artist, textWidth)),
	}, "\n")

	content := text
	if art != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Center, art.Render(dim), " ", text)
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}
