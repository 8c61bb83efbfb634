package playlistview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/ui"
	"github.com/llehouerou/fader/internal/ui/render"
	"github.com/llehouerou/fader/internal/ui/styles"
)

const playingSymbol = "▶"

// View renders the panel.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}
	innerWidth := max(m.W-ui.BorderHeight, 0)

	header := fmt.Sprintf("Playlist (%d/%d)", m.active+1, len(m.songs))
	if m.active < 0 {
		header = fmt.Sprintf("Playlist (%d)", len(m.songs))
	}
	lines := []string{
		styles.T().S().Title.Render(render.Pad(render.Truncate(header, innerWidth), innerWidth)),
		styles.T().S().Subtle.Render(strings.Repeat("─", innerWidth)),
	}

	h := m.listHeight()
	start, end := m.cursor.visibleRange(len(m.songs), h)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, m.songs[i], innerWidth))
	}
	for range h - (end - start) {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}

	return styles.PanelStyle(m.Focused).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))
}

// renderRow renders "▶ ▀▀ Title   Artist" for one song.
func (m Model) renderRow(i int, song playlist.Song, width int) string {
	prefix := "  "
	if i == m.active {
		prefix = playingSymbol + " "
	}

	thumb := strings.Repeat(" ", thumbWidth)
	if m.covers != nil {
		// placeholder on decode failure; the player view logs the error
		if art, _ := m.covers.Get(song.URL, song.Cover, thumbWidth); art != nil {
			thumb = art.Render(0)
		}
	}

	content := max(width-lipgloss.Width(prefix)-thumbWidth-1, 0)
	titleWidth := content * 3 / 5
	artistWidth := content - titleWidth
	text := render.Pad(render.Truncate(song.Title, titleWidth), titleWidth) +
		render.Pad(render.Truncate(song.Artist, artistWidth), artistWidth)

	s := styles.T().S()
	style := s.Base
	switch {
	case i == m.cursor.pos && m.Focused:
		style = s.Cursor
	case i == m.active:
		style = s.Playing
	}
	return style.Render(prefix) + thumb + " " + style.Render(text)
}
