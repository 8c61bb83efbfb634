package app

import "github.com/llehouerou/fader/internal/ui"

const (
	hPad             = 2 // left and right margin of the player screen
	bodyTop          = 2 // header and a blank line
	statusRows       = 2 // status line and help line
	playlistMaxWidth = 56
	popupMaxWidth    = 40
)

// layout is where the player screen draws each block. View and mouse
// handling share it so clicks land on what is drawn.
type layout struct {
	wide bool

	coverX, coverY int
	textX, textY   int // title row; artist and album follow
	textWidth      int

	barX, barY int // progress line; the control line is barY+1
	barWidth   int

	panelX, panelWidth, panelHeight int
}

func (m Model) layout() layout {
	cw := m.Opts.CoverWidth
	ch := cw / 2
	inner := max(m.Width-2*hPad, 0)

	var l layout
	if m.Wide && m.Width >= ui.WideMinWidth {
		textX := hPad + cw + 2
		tw := max(m.Width-textX-hPad, 0)
		l = layout{
			wide:   true,
			coverX: hPad, coverY: bodyTop,
			textX: textX, textY: bodyTop + 1, textWidth: tw,
			barX: textX, barY: bodyTop + 5, barWidth: tw,
		}
	} else {
		l = layout{
			coverX: hPad + max((inner-cw)/2, 0), coverY: bodyTop,
			textX: hPad, textY: bodyTop + ch + 1, textWidth: inner,
			barX: hPad, barY: bodyTop + ch + 5, barWidth: inner,
		}
	}

	l.panelWidth = min(playlistMaxWidth, m.Width)
	l.panelX = m.Width - l.panelWidth
	l.panelHeight = max(m.Height-statusRows, 0)
	return l
}
