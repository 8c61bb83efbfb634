package tags

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/rs/zerolog/log"
)

// Read reads display metadata and embedded cover art from a music file.
//
// A file without any tags is not an error: the returned Metadata is empty
// apart from Path. MP3 and FLAC files fall back to a format-specific reader
// when dhowden/tag fails or misses fields.
func Read(path string) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	md := &Metadata{Path: path}
	m, err := tag.ReadFrom(f)
	switch {
	case err == nil:
		md.Title = m.Title()
		md.Artist = m.Artist()
		md.Album = m.Album()
		if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
			md.Cover = pic.Data
			md.CoverMIME = pic.MIMEType
		}
	case errors.Is(err, tag.ErrNoTagsFound):
		// Tagless files still get a chance with the fallback readers.
	default:
		fb, fbErr := readFallback(path)
		if fbErr != nil {
			return nil, fmt.Errorf("read tags: %w", err)
		}
		log.Debug().Err(err).Str("path", path).Msg("tags read by fallback reader")
		fb.finish()
		return fb, nil
	}

	if !md.complete() {
		if fb, fbErr := readFallback(path); fbErr == nil {
			md.merge(fb)
		}
	}
	md.finish()
	return md, nil
}

// readFallback dispatches to the format-specific reader.
func readFallback(path string) (*Metadata, error) {
	switch ext(path) {
	case ExtMP3:
		return readMP3(path)
	case ExtFLAC:
		return readFLAC(path)
	default:
		return nil, errNoFallback
	}
}

var errNoFallback = errors.New("no fallback reader for format")

func (m *Metadata) finish() {
	m.trim()
	if m.HasCover() && m.CoverMIME == "" {
		m.CoverMIME = detectMimeType(m.Cover)
	}
}
