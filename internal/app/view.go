package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fader/internal/errmsg"
	"github.com/llehouerou/fader/internal/playback"
	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/ui/cover"
	"github.com/llehouerou/fader/internal/ui/nextpopup"
	"github.com/llehouerou/fader/internal/ui/overlay"
	"github.com/llehouerou/fader/internal/ui/playerbar"
	"github.com/llehouerou/fader/internal/ui/popup"
	"github.com/llehouerou/fader/internal/ui/render"
	"github.com/llehouerou/fader/internal/ui/styles"
)

const (
	appTitle          = "fader"
	importDialogWidth = 64
	noSongTitle       = "No song loaded"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.ViewMode == ViewImport {
		return m.importView()
	}
	return m.playerView()
}

func (m Model) importView() string {
	s := styles.T().S()

	feedback := s.Success.Render(m.Feedback)
	switch {
	case m.Importing:
		feedback = s.Muted.Render(m.Feedback)
	case m.FeedbackIsError:
		feedback = s.Error.Render(m.Feedback)
	}

	d := popup.New(appTitle)
	d.Width = min(importDialogWidth, m.Width-4)
	d.Content = strings.Join([]string{
		"Add music files or folders to the playlist.",
		"",
		m.PathInput.View(),
		"",
		feedback,
		s.Muted.Render(fmt.Sprintf("%d song(s) in the playlist", len(m.Controller.Songs()))),
	}, "\n")
	d.Footer = m.Help.ShortHelpView(m.ImportKeys.ShortHelp())
	return d.Render(m.Width, m.Height)
}

func (m Model) playerView() string {
	l := m.layout()
	s := styles.T().S()
	inner := max(m.Width-2*hPad, 0)

	song, index, loaded := m.Screen.Song()
	art := m.coverArt(song, m.Opts.CoverWidth)
	coverBlock := art.Render(m.Screen.coverDim())

	counter := ""
	if loaded {
		counter = fmt.Sprintf("%d/%d", index+1, len(m.Controller.Songs()))
	}
	header := render.Row(s.Title.Render(appTitle), s.Muted.Render(counter), inner)

	title, artist := song.Title, song.Artist
	if !loaded {
		title = noSongTitle
	}
	text := []string{
		m.renderTitle(title, l.textWidth, art.Accent()),
		s.Muted.Render(render.Truncate(artist, l.textWidth)),
		s.Subtle.Render(render.Truncate(song.Album, l.textWidth)),
	}
	p := m.Screen.progress
	bar := playerbar.Render(playerbar.State{
		Playing:  m.Screen.playing,
		Shuffle:  m.Screen.shuffle,
		Repeat:   m.Screen.repeat,
		Position: p.Position,
		Duration: p.Duration,
	}, l.barWidth)

	var body string
	if l.wide {
		right := strings.Join(append(append([]string{""}, text...), "", bar), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, coverBlock, "  ", right)
	} else {
		body = strings.Join(append(append(
			[]string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, coverBlock), ""},
			text...), "", bar), "\n")
	}

	rows := m.Height - statusRows
	lines := append([]string{header, ""}, strings.Split(body, "\n")...)
	if len(lines) > rows {
		lines = lines[:max(rows, 0)]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	margin := strings.Repeat(" ", hPad)
	for i, line := range lines {
		lines[i] = margin + line
	}
	lines = append(lines, margin+m.statusLine(inner), margin+m.Help.ShortHelpView(m.Keys.ShortHelp()))
	view := strings.Join(lines, "\n")

	if pop := m.Screen.Popup(); pop.Phase != playback.PopupHidden {
		card := nextpopup.Render(pop, m.coverArt(pop.Song, nextpopup.ArtWidth), min(popupMaxWidth, inner))
		view = overlay.Place(view, card, m.Width-hPad, rows, lipgloss.Right, lipgloss.Bottom)
	}
	if m.PlaylistOpen {
		view = overlay.Place(view, m.Playlist.View(), m.Width, rows, lipgloss.Right, lipgloss.Top)
	}
	if m.Help.ShowAll {
		d := popup.New("Keys")
		d.Content = m.Help.FullHelpView(m.Keys.FullHelp())
		d.Footer = "press any key to close"
		view = overlay.Place(view, d.Box(m.Width), m.Width, m.Height, lipgloss.Center, lipgloss.Center)
	}
	return view
}

// renderTitle draws a title that fits with a gradient toward the cover's
// accent and scrolls a title that does not.
func (m Model) renderTitle(title string, width int, accent lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if m.Opts.Marquee.Overflows(title, width) {
		return styles.T().S().Title.Render(m.Opts.Marquee.Frame(title, width, m.Screen.titleElapsed()))
	}
	return styles.Gradient(render.Sanitize(title), styles.T().Primary, accent)
}

func (m Model) statusLine(width int) string {
	s := styles.T().S()
	switch {
	case m.Screen.Error() != "":
		return s.Error.Render(render.Truncate(m.Screen.Error(), width))
	case m.Controller.Transitioning():
		return s.Muted.Render("crossfading…")
	default:
		return ""
	}
}

// coverArt returns the song's cover at width. A cover that cannot be
// decoded is logged once and replaced by the placeholder.
func (m Model) coverArt(song playlist.Song, width int) *cover.Art {
	art, err := m.Covers.Get(song.URL, song.Cover, width)
	if err != nil {
		m.Logger.Warn().Msg(errmsg.FormatWith(errmsg.OpCoverDecode, song.Path, err))
	}
	return art
}
