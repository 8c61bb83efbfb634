package playlist

// Queue wraps a Playlist with a current-index pointer and a play history.
type Queue struct {
	playlist     *Playlist
	history      *History
	currentIndex int // -1 if nothing loaded
}

// NewQueue creates a new empty queue.
func NewQueue() *Queue {
	return &Queue{
		playlist:     NewPlaylist(),
		history:      NewHistory(),
		currentIndex: -1,
	}
}

// Current returns the current song, or nil if none.
func (q *Queue) Current() *Song {
	return q.playlist.Song(q.currentIndex)
}

// CurrentIndex returns the index of the current song (-1 if none).
func (q *Queue) CurrentIndex() int {
	return q.currentIndex
}

// History returns the play history.
func (q *Queue) History() *History {
	return q.history
}

// Upcoming returns the index that Advance would move to, without moving.
// Returns -1 if the queue is empty.
func (q *Queue) Upcoming(shuffle bool, rng Rand) int {
	if q.IsEmpty() {
		return -1
	}
	if q.currentIndex < 0 {
		return 0
	}
	return NextIndex(q.currentIndex, q.playlist.Len(), shuffle, rng)
}

// Advance records the current index in the history and moves forward.
// With nothing loaded it moves to the first song without recording.
// Returns the new index, or -1 if the queue is empty.
func (q *Queue) Advance(shuffle bool, rng Rand) int {
	if q.IsEmpty() {
		return -1
	}
	if q.currentIndex < 0 {
		q.currentIndex = 0
		return 0
	}
	next := NextIndex(q.currentIndex, q.playlist.Len(), shuffle, rng)
	q.history.Push(q.currentIndex)
	q.currentIndex = next
	return next
}

// Back moves to the previous index using the history.
// Returns the new index, or -1 if the queue is empty.
func (q *Queue) Back() int {
	if q.IsEmpty() {
		return -1
	}
	q.currentIndex = PreviousIndex(q.currentIndex, q.playlist.Len(), q.history)
	return q.currentIndex
}

// JumpTo sets the current index to the specified position.
// Returns the song at that position, or nil if invalid.
func (q *Queue) JumpTo(index int) *Song {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends songs without changing the current index.
func (q *Queue) Add(songs ...Song) {
	q.playlist.Add(songs...)
}

// Replace clears the queue and its history, then adds songs.
// Nothing is loaded afterwards: the current index is -1 until JumpTo.
// Returns the songs that were discarded.
func (q *Queue) Replace(songs ...Song) []Song {
	old := q.playlist.Songs()
	q.playlist.Clear()
	q.history.Reset()
	q.currentIndex = -1
	q.playlist.Add(songs...)
	return old
}

// Songs returns all songs in the queue.
func (q *Queue) Songs() []Song {
	return q.playlist.Songs()
}

// Song returns the song at index, or nil if out of bounds.
func (q *Queue) Song(index int) *Song {
	return q.playlist.Song(index)
}

// Playlist returns the underlying playlist.
func (q *Queue) Playlist() *Playlist {
	return q.playlist
}

// Len returns the number of songs in the queue.
func (q *Queue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no songs.
func (q *Queue) IsEmpty() bool {
	return q.playlist.Len() == 0
}
