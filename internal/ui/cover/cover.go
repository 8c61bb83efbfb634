// Package cover renders cover art in the terminal with half-block cells:
// each cell shows two vertical pixels, the top as foreground of "▀" and the
// bottom as background.
package cover

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG covers
	_ "image/png"  // PNG covers
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/llehouerou/fader/internal/ui/styles"
)

const halfBlock = "▀"

// ErrNoData is returned by Decode for an empty cover.
var ErrNoData = errors.New("no cover data")

// Art is a cover scaled to a cell grid, ready to render.
type Art struct {
	width  int               // cells
	pixels [][]colorful.Color // [row][col], 2 rows per cell
	accent colorful.Color
}

// Decode parses JPEG or PNG cover bytes.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// New scales img to a square of width cells (width x width pixels, width/2
// rows).
func New(img image.Image, width int) *Art {
	width = max(width, 2)
	h := width - width%2
	scaled := resize.Resize(uint(width), uint(h), img, resize.Lanczos3) //nolint:gosec // width is positive

	b := scaled.Bounds()
	pixels := make([][]colorful.Color, h)
	for y := range h {
		row := make([]colorful.Color, width)
		for x := range width {
			row[x] = toColorful(scaled.At(b.Min.X+x, b.Min.Y+y))
		}
		pixels[y] = row
	}
	return &Art{width: width, pixels: pixels, accent: accent(pixels)}
}

// Width returns the art width in cells.
func (a *Art) Width() int { return a.width }

// Height returns the art height in rows.
func (a *Art) Height() int { return len(a.pixels) / 2 }

// Accent returns the first vivid color of the cover, or the theme primary.
func (a *Art) Accent() lipgloss.Color {
	return lipgloss.Color(a.accent.Hex())
}

// Render draws the art. dim in 0..1 blends every pixel toward the theme
// background; 1 is fully faded out.
func (a *Art) Render(dim float64) string {
	dim = max(0, min(dim, 1))
	bg := themeBackground()

	lines := make([]string, 0, a.Height())
	for y := 0; y+1 < len(a.pixels); y += 2 {
		var b strings.Builder
		for x := range a.width {
			top := a.pixels[y][x].BlendRgb(bg, dim).Clamped()
			bottom := a.pixels[y+1][x].BlendRgb(bg, dim).Clamped()
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(halfBlock))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Default returns the placeholder cover: a diagonal gradient between the
// theme accent colors.
func Default(size int) image.Image {
	size = max(size, 2)
	t := styles.T()
	from, _ := colorful.Hex(string(t.Primary))
	to, _ := colorful.Hex(string(t.BgCursor))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			f := float64(x+y) / float64(2*(size-1))
			img.Set(x, y, from.BlendHcl(to, f).Clamped())
		}
	}
	return img
}

func themeBackground() colorful.Color {
	c, err := colorful.Hex(string(styles.T().BgBase))
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toColorful(c color.Color) colorful.Color {
	if cf, ok := colorful.MakeColor(c); ok {
		return cf
	}
	// fully transparent
	return themeBackground()
}

// accent picks the first bright, saturated pixel.
func accent(pixels [][]colorful.Color) colorful.Color {
	for _, row := range pixels {
		for _, c := range row {
			_, chroma, l := c.Hcl()
			if l > 0.6 && chroma > 0.3 && l < 0.95 {
				return c
			}
		}
	}
	c, _ := colorful.Hex(string(styles.T().Primary))
	return c
}
