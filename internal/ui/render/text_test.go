package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Song Title", "Song Title"},
		{"unicode kept", "Café 東京", "Café 東京"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline dropped", "line\nbreak", "linebreak"},
		{"escape dropped", "red\x1b[31m", "red[31m"},
		{"c1 control dropped", "a\u0085b", "ab"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"invalid byte dropped", "a\xffb", "ab"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello..."},
		{"only ellipsis", "hello", 3, "..."},
		{"wide runes", "東京東京", 7, "東京..."},
		{"sanitized first", "a\nb", 5, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)

			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, lipgloss.Width(got), tt.width)
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads", "ab", 4, "ab  "},
		{"wide rune counts twice", "東", 4, "東  "},
		{"already wide enough", "abcd", 2, "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pad(tt.in, tt.width))
		})
	}
}

func TestRow(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		width       int
		want        string
	}{
		{"spread", "fader", "1/3", 12, "fader    1/3"},
		{"at least one space", "left", "right", 4, "left right"},
		{"empty right", "x", "", 3, "x  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Row(tt.left, tt.right, tt.width))
		})
	}
}
