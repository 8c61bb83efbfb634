// Package tags extracts display metadata and embedded cover art from music
// files. Tags are read-only: files are never modified.
package tags

import (
	"net/http"
	"path/filepath"
	"strings"
)

// File extensions with a dedicated fallback reader.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
)

const (
	mimeJPEG = "image/jpeg"
	mimePNG  = "image/png"
)

// Metadata is the display metadata of a music file.
// Empty fields mean the tag was absent.
type Metadata struct {
	Path   string
	Title  string
	Artist string
	Album  string

	// Embedded cover art, nil when the file has none.
	Cover     []byte
	CoverMIME string
}

// HasCover returns true if the file carries embedded cover art.
func (m *Metadata) HasCover() bool {
	return len(m.Cover) > 0
}

// merge fills empty fields of m from other.
func (m *Metadata) merge(other *Metadata) {
	if other == nil {
		return
	}
	if m.Title == "" {
		m.Title = other.Title
	}
	if m.Artist == "" {
		m.Artist = other.Artist
	}
	if m.Album == "" {
		m.Album = other.Album
	}
	if !m.HasCover() && other.HasCover() {
		m.Cover = other.Cover
		m.CoverMIME = other.CoverMIME
	}
}

func (m *Metadata) complete() bool {
	return m.Title != "" && m.Artist != "" && m.HasCover()
}

func (m *Metadata) trim() {
	m.Title = strings.TrimSpace(m.Title)
	m.Artist = strings.TrimSpace(m.Artist)
	m.Album = strings.TrimSpace(m.Album)
}

// detectMimeType sniffs image data, used when a tag carries no MIME type.
func detectMimeType(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	switch ct := http.DetectContentType(data); ct {
	case mimeJPEG, mimePNG, "image/gif", "image/webp":
		return ct
	default:
		return mimeJPEG
	}
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
