package playlist

import "time"

// Song represents a single imported song.
//
// Everything except Duration is fixed at import time. Duration is zero until
// a playback handle reports it.
type Song struct {
	Path             string // file path on disk
	URL              string // process-local playable handle (song://...)
	Title            string
	Artist           string
	Album            string
	Duration         time.Duration
	Cover            []byte // embedded cover image, nil means default cover
	CoverMIME        string
	HasEmbeddedCover bool
}

// Playlist holds an append-only, ordered collection of songs.
type Playlist struct {
	songs []Song
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		songs: make([]Song, 0),
	}
}

// Add appends songs to the playlist.
func (p *Playlist) Add(songs ...Song) {
	p.songs = append(p.songs, songs...)
}

// Clear removes all songs from the playlist.
// Used when the playlist is rebuilt from scratch.
func (p *Playlist) Clear() {
	p.songs = p.songs[:0]
}

// Songs returns a copy of all songs.
func (p *Playlist) Songs() []Song {
	result := make([]Song, len(p.songs))
	copy(result, p.songs)
	return result
}

// Song returns the song at the given index, or nil if out of bounds.
func (p *Playlist) Song(index int) *Song {
	if index < 0 || index >= len(p.songs) {
		return nil
	}
	return &p.songs[index]
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.songs)
}

// SetDuration records the duration of the song at index once it is known.
// Returns false if index is out of bounds.
func (p *Playlist) SetDuration(index int, d time.Duration) bool {
	if index < 0 || index >= len(p.songs) {
		return false
	}
	p.songs[index].Duration = d
	return true
}

// IndexOf returns the index of the first song matching fn, or -1.
func (p *Playlist) IndexOf(fn func(Song) bool) int {
	for i := range p.songs {
		if fn(p.songs[i]) {
			return i
		}
	}
	return -1
}
