package tags

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMinimalMP3 writes an MP3 frame header plus padding (one 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeID3(t *testing.T, path, title, artist, album string, cover []byte) {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	defer tag.Close()

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(title)
	tag.SetArtist(artist)
	tag.SetAlbum(album)
	if cover != nil {
		tag.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    id3v2.EncodingUTF8,
			MimeType:    mimePNG,
			PictureType: id3v2.PTFrontCover,
			Description: "Front Cover",
			Picture:     cover,
		})
	}
	require.NoError(t, tag.Save())
}

func createTestFLAC(t *testing.T, path string, comments map[string]string, cover []byte) {
	t.Helper()
	streamInfo := goflac.MetaDataBlock{Type: goflac.StreamInfo, Data: make([]byte, 34)}
	f := &goflac.File{Meta: []*goflac.MetaDataBlock{&streamInfo}}

	cmts := flacvorbis.New()
	for k, v := range comments {
		require.NoError(t, cmts.Add(k, v))
	}
	cmtBlock := cmts.Marshal()
	f.Meta = append(f.Meta, &cmtBlock)

	if cover != nil {
		pic, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Front Cover", cover, mimePNG)
		require.NoError(t, err)
		picBlock := pic.Marshal()
		f.Meta = append(f.Meta, &picBlock)
	}
	require.NoError(t, f.Save(path))
}

func TestRead_MP3WithTagsAndCover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createMinimalMP3(t, path)
	cover := testPNG(t)
	writeID3(t, path, "Intro", "Band", "First Album", cover)

	md, err := Read(path)

	require.NoError(t, err)
	assert.Equal(t, path, md.Path)
	assert.Equal(t, "Intro", md.Title)
	assert.Equal(t, "Band", md.Artist)
	assert.Equal(t, "First Album", md.Album)
	assert.True(t, md.HasCover())
	assert.Equal(t, cover, md.Cover)
	assert.Equal(t, mimePNG, md.CoverMIME)
}

func TestRead_MP3WithoutTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.mp3")
	createMinimalMP3(t, path)

	md, err := Read(path)

	require.NoError(t, err)
	assert.Equal(t, &Metadata{Path: path}, md)
	assert.False(t, md.HasCover())
}

func TestRead_FLAC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.flac")
	cover := testPNG(t)
	createTestFLAC(t, path, map[string]string{
		flacvorbis.FIELD_TITLE:  " Outro ",
		flacvorbis.FIELD_ARTIST: "Band",
		flacvorbis.FIELD_ALBUM:  "Second Album",
	}, cover)

	md, err := Read(path)

	require.NoError(t, err)
	assert.Equal(t, "Outro", md.Title)
	assert.Equal(t, "Band", md.Artist)
	assert.Equal(t, "Second Album", md.Album)
	assert.Equal(t, cover, md.Cover)
	assert.Equal(t, mimePNG, md.CoverMIME)
}

func TestReadFLAC_AlbumArtistFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.flac")
	createTestFLAC(t, path, map[string]string{
		flacvorbis.FIELD_TITLE: "Track",
		"ALBUMARTIST":          "Various",
	}, nil)

	md, err := readFLAC(path)

	require.NoError(t, err)
	assert.Equal(t, "Track", md.Title)
	assert.Equal(t, "Various", md.Artist)
	assert.False(t, md.HasCover())
}

func TestReadMP3_PrefersFrontCover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mp3")
	createMinimalMP3(t, path)
	front := testPNG(t)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mimeJPEG,
		PictureType: id3v2.PTOther,
		Description: "back",
		Picture:     []byte("not-the-front"),
	})
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    mimePNG,
		PictureType: id3v2.PTFrontCover,
		Description: "front",
		Picture:     front,
	})
	require.NoError(t, tag.Save())
	tag.Close()

	md, err := readMP3(path)

	require.NoError(t, err)
	assert.Equal(t, front, md.Cover)
	assert.Equal(t, mimePNG, md.CoverMIME)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.mp3"))

	assert.Error(t, err)
}

func TestRead_UnreadableUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	_, err := Read(path)

	assert.Error(t, err)
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, ""},
		{"png", []byte("\x89PNG\r\n\x1a\n0000"), mimePNG},
		{"jpeg", []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10}, mimeJPEG},
		{"unknown defaults to jpeg", []byte("garbage"), mimeJPEG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectMimeType(tt.data); got != tt.want {
				t.Errorf("detectMimeType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetadata_Merge(t *testing.T) {
	md := &Metadata{Title: "Kept"}
	md.merge(&Metadata{Title: "Ignored", Artist: "Filled", Cover: []byte{1}, CoverMIME: mimePNG})

	assert.Equal(t, "Kept", md.Title)
	assert.Equal(t, "Filled", md.Artist)
	assert.Equal(t, []byte{1}, md.Cover)

	md.merge(nil)
	assert.Equal(t, "Kept", md.Title)
}
