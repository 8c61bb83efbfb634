// Package overlay draws positioned boxes (popups, dialogs) over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Non-space cells of each overlay line replace the base at the same column;
// leading and trailing spaces let the base show through. ANSI-aware.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		startCol := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))
		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		result := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			result += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

// Place positions box inside a width x height area of base and composes it.
func Place(base, box string, width, height int, h, v lipgloss.Position) string {
	return Compose(base, lipgloss.Place(width, height, h, v, box), width)
}
