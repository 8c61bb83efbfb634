package playlist

// History is a stack of previously visited playlist indices.
//
// An index is pushed every time playback moves forward (manual next,
// auto-advance or crossfade), recording the index being left. Going back
// pops it again, which gives a "true previous" in shuffle mode.
type History struct {
	entries []int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: make([]int, 0)}
}

// Push records a visited index.
func (h *History) Push(index int) {
	h.entries = append(h.entries, index)
}

// Pop removes and returns the most recent index.
// Returns -1 and false if the history is empty.
func (h *History) Pop() (int, bool) {
	if len(h.entries) == 0 {
		return -1, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of recorded indices.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded indices, oldest first.
func (h *History) Entries() []int {
	result := make([]int, len(h.entries))
	copy(result, h.entries)
	return result
}

// Reset forgets every recorded index.
func (h *History) Reset() {
	h.entries = h.entries[:0]
}
