// Package popup renders modal dialogs centered over the player.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fader/internal/ui/render"
	"github.com/llehouerou/fader/internal/ui/styles"
)

// Style configures the dialog appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default dialog style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.BorderFocus,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a bordered box with a title, content and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width, 0 fits the content
	Style   Style
}

// New creates a dialog with the default style.
func New(title string) *Dialog {
	return &Dialog{Title: title, Style: DefaultStyle()}
}

// Box renders the dialog without positioning. termWidth caps its width.
func (d *Dialog) Box(termWidth int) string {
	inner := d.Width
	if inner == 0 {
		inner = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	inner = max(min(inner, termWidth-4), 1)

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines,
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, d.Style.TitleStyle.Render(render.Truncate(d.Title, inner))),
			"")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		if lipgloss.Width(line) > inner {
			line = render.Truncate(line, inner)
		}
		lines = append(lines, line)
	}
	if d.Footer != "" {
		lines = append(lines, "",
			lipgloss.PlaceHorizontal(inner, lipgloss.Center, d.Style.FooterStyle.Render(render.Truncate(d.Footer, inner))))
	}

	return lipgloss.NewStyle().
		Border(d.Style.Border).
		BorderForeground(d.Style.BorderColor).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(lines, "\n"))
}

// Render returns the dialog centered in a termWidth x termHeight area, ready
// to be composed over the base view.
func (d *Dialog) Render(termWidth, termHeight int) string {
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, d.Box(termWidth))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
