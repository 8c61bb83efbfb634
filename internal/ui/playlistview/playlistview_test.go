package playlistview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/fader/internal/playlist"
	"github.com/llehouerou/fader/internal/ui"
	"github.com/llehouerou/fader/internal/ui/cover"
)

func songs(n int) []playlist.Song {
	out := make([]playlist.Song, n)
	for i := range out {
		out[i] = playlist.Song{
			URL:    fmt.Sprintf("song://%d", i),
			Title:  fmt.Sprintf("Title %d", i),
			Artist: fmt.Sprintf("Artist %d", i),
		}
	}
	return out
}

// newModel returns a focused panel showing height-PanelOverhead rows.
func newModel(n, height int) Model {
	m := New(cover.NewCache(16))
	m.SetSize(40, height)
	m.SetFocused(true)
	m.SetSongs(songs(n))
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestUpdate_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down", []string{"j", "down"}, 2},
		{"up clamps", []string{"k", "up"}, 0},
		{"bottom", []string{"G"}, 19},
		{"top", []string{"G", "g"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(20, 10)
			for _, k := range tt.keys {
				res := m.Update(keyMsg(k))
				assert.False(t, res.Play)
			}
			assert.Equal(t, tt.want, m.Cursor())
		})
	}
}

func TestUpdate_EnterPlaysCursor(t *testing.T) {
	m := newModel(5, 10)
	m.Update(keyMsg("j"))

	res := m.Update(keyMsg("enter"))

	assert.Equal(t, Result{Play: true, Index: 1}, res)
}

func TestUpdate_EnterOnEmptyList(t *testing.T) {
	m := newModel(0, 10)

	res := m.Update(keyMsg("enter"))

	assert.False(t, res.Play)
	assert.Equal(t, -1, res.Index)
}

func TestUpdate_IgnoredWhenUnfocused(t *testing.T) {
	m := newModel(5, 10)
	m.SetFocused(false)

	m.Update(keyMsg("j"))

	assert.Zero(t, m.Cursor())
}

func TestUpdate_ActiveKeyJumpsToPlaying(t *testing.T) {
	m := newModel(20, 10)
	m.SetActive(12)
	m.Update(keyMsg("g"))

	m.Update(keyMsg("."))

	assert.Equal(t, 12, m.Cursor())
}

func TestUpdate_MouseClickPlaysRow(t *testing.T) {
	m := newModel(5, 10)

	res := m.Update(tea.MouseMsg{
		X: 5, Y: ui.PanelOverhead - 1 + 2,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})

	assert.Equal(t, Result{Play: true, Index: 2}, res)
	assert.Equal(t, 2, m.Cursor())
}

func TestUpdate_MouseClickOutsideRows(t *testing.T) {
	m := newModel(2, 10)

	for _, y := range []int{0, 1, ui.PanelOverhead - 1 + 3} {
		res := m.Update(tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
		assert.False(t, res.Play, "y=%d", y)
	}
}

func TestUpdate_WheelScrolls(t *testing.T) {
	m := newModel(20, 10)

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown})

	res := m.Update(tea.MouseMsg{
		Y: ui.PanelOverhead - 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	assert.Equal(t, 2, res.Index)
}

func TestSetActive_ScrollsIntoView(t *testing.T) {
	m := newModel(50, 10)

	m.SetActive(40)

	start, end := m.cursor.visibleRange(50, m.listHeight())
	assert.True(t, start <= 40 && 40 < end, "visible [%d,%d)", start, end)
}

func TestView(t *testing.T) {
	m := newModel(3, 8)
	m.SetActive(1)

	out := ansi.Strip(m.View())
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 8)
	assert.Contains(t, lines[1], "Playlist (2/3)")
	assert.Contains(t, lines[4], playingSymbol+" ")
	assert.Contains(t, lines[4], "Title 1")
	assert.Contains(t, lines[4], "Artist 1")
	assert.NotContains(t, lines[3], playingSymbol)
}

func TestView_ZeroSize(t *testing.T) {
	m := New(nil)

	assert.Empty(t, m.View())
}

func TestCursor_EnsureVisible(t *testing.T) {
	c := cursor{margin: 2}

	c.jump(9, 20, 5)
	assert.Equal(t, 9, c.pos)
	assert.Equal(t, 7, c.offset)

	c.jump(100, 20, 5)
	assert.Equal(t, 19, c.pos)
	assert.Equal(t, 15, c.offset)

	c.jump(0, 0, 5)
	assert.Zero(t, c.pos)
}
