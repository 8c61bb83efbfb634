package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not "#rrggbb" (ANSI palette indexes).
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text bold, moving from one color to the other in HCL
// space. Each grapheme cluster gets one color, so combining marks stay with
// their base letter.
func Gradient(text string, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	start, end := parseColor(from), parseColor(to)

	var b strings.Builder
	for i, cluster := range clusters {
		c := start.BlendHcl(end, blendAt(i, len(clusters))).Clamped()
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// blendAt is the blend position of cluster i out of n.
func blendAt(i, n int) float64 {
	if n < 2 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

func parseColor(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
