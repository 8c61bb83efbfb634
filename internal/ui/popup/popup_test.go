package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestDialog_Box(t *testing.T) {
	d := New("Add songs")
	d.Content = "Path: ~/Music"
	d.Footer = "enter import · esc cancel"

	box := ansi.Strip(d.Box(80))
	lines := strings.Split(box, "\n")

	assert.Contains(t, lines[1], "Add songs")
	assert.Contains(t, box, "Path: ~/Music")
	assert.Contains(t, lines[len(lines)-2], "esc cancel")
	// border + padding around the widest line
	assert.Equal(t, lipgloss.Width("enter import · esc cancel")+4, lipgloss.Width(lines[0]))
}

func TestDialog_BoxCappedToTerminal(t *testing.T) {
	d := New("")
	d.Content = strings.Repeat("x", 100)

	box := d.Box(30)

	for _, line := range strings.Split(box, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func TestDialog_RenderCenters(t *testing.T) {
	d := New("Hi")
	d.Width = 6

	out := d.Render(40, 11)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 11)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
	assert.True(t, strings.HasPrefix(ansi.Strip(lines[3]), strings.Repeat(" ", 15)))
}
