package render

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestMarquee_Frame(t *testing.T) {
	// "abcdef" plus the gap is 9 cells: one cell per second over 9s.
	m := Marquee{Scroll: 9 * time.Second, Pause: time.Second}

	tests := []struct {
		name    string
		text    string
		width   int
		elapsed time.Duration
		want    string
	}{
		{"fits is padded", "hi", 5, 3 * time.Second, "hi   "},
		{"start", "abcdef", 3, 0, "abc"},
		{"held during pause", "abcdef", 3, time.Second, "abc"},
		{"scrolled one cell", "abcdef", 3, 2 * time.Second, "bcd"},
		{"wraps into gap", "abcdef", 3, 8 * time.Second, "  a"},
		{"next loop restarts", "abcdef", 3, 10 * time.Second, "abc"},
		{"zero width", "abcdef", 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Frame(tt.text, tt.width, tt.elapsed))
		})
	}
}

func TestMarquee_NoScrollDuration(t *testing.T) {
	m := Marquee{}

	assert.Equal(t, "ab...", m.Frame("abcdefgh", 5, time.Hour))
}

func TestMarquee_WideRunes(t *testing.T) {
	m := Marquee{Scroll: time.Duration(runewidth.StringWidth("日本語テキスト"+marqueeGap)) * time.Second}

	got := m.Frame("日本語テキスト", 4, time.Second)

	assert.Equal(t, " 本 ", got)
	assert.Equal(t, 4, runewidth.StringWidth(got))
}

func TestMarquee_Overflows(t *testing.T) {
	m := Marquee{Scroll: time.Second}

	assert.False(t, m.Overflows("short", 10))
	assert.True(t, m.Overflows("a much longer title", 10))
}
