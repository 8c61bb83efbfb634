// Package playerbar renders the transport area: the seekable progress line
// and the control line with play state and mode indicators.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/fader/internal/ui/styles"
)

const (
	filledBar = "━"
	emptyBar  = "─"

	playSymbol     = "▶"
	pauseSymbol    = "⏸"
	prevSymbol     = "⏮"
	nextSymbol     = "⏭"
	shuffleSymbol  = "⇄"
	repeatSymbol   = "↻"
	timeBarPadding = 2
)

// Height is the number of rows rendered by Render.
const Height = 2

// State holds everything needed to render the player bar.
type State struct {
	Playing  bool
	Shuffle  bool
	Repeat   bool
	Position time.Duration
	Duration time.Duration
}

// FormatTime renders d as minutes:seconds. Negative durations render as 0:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Layout describes where the progress bar sits in a line of a given width.
type Layout struct {
	TimeWidth int // width of each time label
	BarStart  int // first cell of the bar
	BarWidth  int // cells in the bar, 0 when too narrow
}

// NewLayout computes the progress line layout. Both time labels are padded
// to the width of the duration label so the bar does not move.
func NewLayout(duration time.Duration, width int) Layout {
	tw := lipgloss.Width(FormatTime(duration))
	bar := width - 2*tw - 2*timeBarPadding
	if bar < 3 {
		return Layout{TimeWidth: tw}
	}
	return Layout{TimeWidth: tw, BarStart: tw + timeBarPadding, BarWidth: bar}
}

// SeekFraction maps a cell x on the progress line to a fraction of the
// track. ok is false when x is outside the bar.
func (l Layout) SeekFraction(x int) (fraction float64, ok bool) {
	if l.BarWidth == 0 || x < l.BarStart || x >= l.BarStart+l.BarWidth {
		return 0, false
	}
	return float64(x-l.BarStart) / float64(l.BarWidth), true
}

// Render returns the two player bar lines for the given width.
func Render(s State, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderProgress(s, width),
		renderControls(s, width),
	)
}

func renderProgress(s State, width int) string {
	l := NewLayout(s.Duration, width)
	muted := styles.T().S().Muted
	pos := muted.Render(fmt.Sprintf("%*s", l.TimeWidth, FormatTime(s.Position)))
	dur := muted.Render(FormatTime(s.Duration))
	if l.BarWidth == 0 {
		return pos + " / " + dur
	}

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	pad := strings.Repeat(" ", timeBarPadding)
	return pos + pad + ProgressBar(ratio, l.BarWidth) + pad + dur
}

// ProgressBar renders a bar of width cells filled to ratio (clamped to 0..1).
func ProgressBar(ratio float64, width int) string {
	ratio = max(0, min(ratio, 1))
	filled := min(int(float64(width)*ratio), width)
	t := styles.T()
	return lipgloss.NewStyle().Foreground(t.Primary).Render(strings.Repeat(filledBar, filled)) +
		lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat(emptyBar, width-filled))
}

func renderControls(s State, width int) string {
	status := playSymbol
	if s.Playing {
		status = pauseSymbol
	}
	controls := strings.Join([]string{
		modeIndicator(shuffleSymbol, s.Shuffle),
		prevSymbol,
		styles.T().S().Title.Render(status),
		nextSymbol,
		modeIndicator(repeatSymbol, s.Repeat),
	}, "   ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, controls)
}

// modeIndicator highlights symbol when the mode is on.
func modeIndicator(symbol string, on bool) string {
	if on {
		return styles.T().S().Playing.Render(symbol)
	}
	return styles.T().S().Subtle.Render(symbol)
}
