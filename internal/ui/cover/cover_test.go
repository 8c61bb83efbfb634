package cover

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, c color.Color, size int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, err := Decode(solidPNG(t, color.White, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestNew_Dimensions(t *testing.T) {
	tests := []struct {
		width      int
		wantWidth  int
		wantHeight int
	}{
		{16, 16, 8},
		{7, 7, 3},
		{1, 2, 1},
	}

	for _, tt := range tests {
		art := New(Default(32), tt.width)
		assert.Equal(t, tt.wantWidth, art.Width(), "width %d", tt.width)
		assert.Equal(t, tt.wantHeight, art.Height(), "width %d", tt.width)
	}
}

func TestArt_Render(t *testing.T) {
	img, err := Decode(solidPNG(t, color.RGBA{R: 200, G: 40, B: 40, A: 255}, 8))
	require.NoError(t, err)
	art := New(img, 6)

	lines := strings.Split(ansi.Strip(art.Render(0)), "\n")

	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, strings.Repeat(halfBlock, 6), line)
	}
}

func TestArt_Accent(t *testing.T) {
	vivid, err := Decode(solidPNG(t, color.RGBA{R: 250, G: 120, B: 30, A: 255}, 4))
	require.NoError(t, err)
	gray, err := Decode(solidPNG(t, color.RGBA{R: 90, G: 90, B: 90, A: 255}, 4))
	require.NoError(t, err)

	assert.NotEqual(t, New(gray, 4).Accent(), New(vivid, 4).Accent())
}

func TestCache_Get(t *testing.T) {
	c := NewCache(2)
	data := solidPNG(t, color.White, 4)

	first, err := c.Get("song://a", data, 8)
	require.NoError(t, err)
	again, err := c.Get("song://a", nil, 8)
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.Equal(t, 1, c.Len())
}

func TestCache_PlaceholderOnMissingOrBadCover(t *testing.T) {
	c := NewCache(4)

	art, err := c.Get("song://none", nil, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, art.Width())

	art, err = c.Get("song://bad", []byte("garbage"), 8)
	assert.Error(t, err)
	require.NotNil(t, art)
	assert.Equal(t, 8, art.Width())
}

func TestCache_Evicts(t *testing.T) {
	c := NewCache(2)

	for _, id := range []string{"a", "b", "c"} {
		_, err := c.Get(id, nil, 4)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, c.Len())
}
