package render

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// marqueeGap separates the end of a scrolling text from its next repetition.
const marqueeGap = "   "

// Marquee is a horizontally scrolling single line of text. Text that fits
// its width is shown still; longer text pauses at the start, then scrolls
// one full loop over Scroll.
type Marquee struct {
	Scroll time.Duration // time for one full loop
	Pause  time.Duration // hold at the start of each loop
}

// Overflows reports whether s is wider than width and would scroll.
func (m Marquee) Overflows(s string, width int) bool {
	return runewidth.StringWidth(Sanitize(s)) > width
}

// Frame returns the visible width cells of s after elapsed time.
func (m Marquee) Frame(s string, width int, elapsed time.Duration) string {
	if width <= 0 {
		return ""
	}
	s = Sanitize(s)
	if !m.Overflows(s, width) || m.Scroll <= 0 {
		return Pad(Truncate(s, width), width)
	}

	loop := s + marqueeGap
	loopWidth := runewidth.StringWidth(loop)
	cycle := m.Pause + m.Scroll
	t := elapsed % cycle
	offset := 0
	if t > m.Pause {
		offset = int(int64(loopWidth) * int64(t-m.Pause) / int64(m.Scroll))
	}

	return window(loop+loop, offset, width)
}

// window returns width cells of s starting at cell offset. Wide runes cut by
// either edge are replaced by spaces.
func window(s string, offset, width int) string {
	var b strings.Builder
	col, used := 0, 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		switch {
		case col+w <= offset:
		case col < offset:
			// wide rune straddling the left edge
			b.WriteString(strings.Repeat(" ", col+w-offset))
			used += col + w - offset
		case used+w <= width:
			b.WriteRune(r)
			used += w
		default:
			return b.String() + strings.Repeat(" ", width-used)
		}
		col += w
		if used >= width {
			break
		}
	}
	return b.String() + strings.Repeat(" ", max(width-used, 0))
}
