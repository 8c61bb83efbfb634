// Package playlistview renders the playlist panel: one row per song with a
// cover swatch, the active song highlighted, and selection by keyboard or
// mouse.
package playlistview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/ui"
	"github.com/llehouerou/fader/internal/ui/cover"
)

// thumbWidth is the cover swatch width: two cells give one row.
const thumbWidth = 2

// Result tells the parent what an Update did.
type Result struct {
	Play  bool // user chose a song
	Index int  // chosen song, -1 if none
}

// Model is the playlist panel.
type Model struct {
	ui.Box
	keys   KeyMap
	songs  []playlist.Song
	active int
	cursor cursor
	covers *cover.Cache
}

// New creates an empty playlist panel drawing swatches from covers.
func New(covers *cover.Cache) Model {
	return Model{
		keys:   DefaultKeyMap(),
		active: -1,
		cursor: cursor{margin: ui.ScrollMargin},
		covers: covers,
	}
}

// KeyMap returns the panel bindings for the help view.
func (m Model) KeyMap() KeyMap { return m.keys }

// SetSongs replaces the listed songs.
func (m *Model) SetSongs(songs []playlist.Song) {
	m.songs = songs
	m.cursor.jump(m.cursor.pos, len(songs), m.listHeight())
}

// SetActive marks the playing song and scrolls it into view.
func (m *Model) SetActive(index int) {
	m.active = index
	if index >= 0 {
		m.cursor.jump(index, len(m.songs), m.listHeight())
	}
}

// Active returns the highlighted playing index, -1 when none.
func (m Model) Active() int { return m.active }

// Cursor returns the cursor row.
func (m Model) Cursor() int { return m.cursor.pos }

// SetFocused gives or takes keyboard and mouse input.
func (m *Model) SetFocused(focused bool) { m.Focused = focused }

// SetSize sets the panel size and keeps the cursor visible.
func (m *Model) SetSize(width, height int) {
	m.Resize(width, height)
	m.cursor.ensureVisible(len(m.songs), m.listHeight())
}

func (m Model) listHeight() int {
	return m.Rows(ui.PanelOverhead)
}

// Update handles keys and mouse input. Mouse coordinates are relative to
// the panel's top-left corner.
func (m *Model) Update(msg tea.Msg) Result {
	none := Result{Index: -1}
	if !m.Focused {
		return none
	}
	n, h := len(m.songs), m.listHeight()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor.move(-1, n, h)
		case key.Matches(msg, m.keys.Down):
			m.cursor.move(1, n, h)
		case key.Matches(msg, m.keys.Top):
			m.cursor.jump(0, n, h)
		case key.Matches(msg, m.keys.Bottom):
			m.cursor.jump(n-1, n, h)
		case key.Matches(msg, m.keys.PageUp):
			m.cursor.move(-h/2, n, h)
		case key.Matches(msg, m.keys.PageDown):
			m.cursor.move(h/2, n, h)
		case key.Matches(msg, m.keys.Active):
			if m.active >= 0 {
				m.cursor.jump(m.active, n, h)
			}
		case key.Matches(msg, m.keys.Play):
			if n > 0 {
				return Result{Play: true, Index: m.cursor.pos}
			}
		}

	case tea.MouseMsg:
		switch msg.Button { //nolint:exhaustive // other buttons are ignored
		case tea.MouseButtonWheelUp:
			m.cursor.scroll(-1, n, h)
		case tea.MouseButtonWheelDown:
			m.cursor.scroll(1, n, h)
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return none
			}
			if row, ok := m.rowAt(msg.Y); ok {
				m.cursor.jump(row, n, h)
				return Result{Play: true, Index: row}
			}
		}
	}
	return none
}

// rowAt maps a panel-relative y to a song index.
func (m Model) rowAt(y int) (int, bool) {
	// top border, header, separator
	line := y - (ui.PanelOverhead - 1)
	if line < 0 || line >= m.listHeight() {
		return 0, false
	}
	row := m.cursor.offset + line
	if row >= len(m.songs) {
		return 0, false
	}
	return row, true
}
