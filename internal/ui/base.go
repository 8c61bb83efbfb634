package ui

// Box is the size and focus state of a bordered panel.
type Box struct {
	W, H    int
	Focused bool
}

// Resize sets the outer size in cells.
func (b *Box) Resize(w, h int) {
	b.W, b.H = w, h
}

// Empty reports whether there is no room to draw.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Rows returns the list rows left once overhead lines are drawn.
func (b Box) Rows(overhead int) int {
	return max(b.H-overhead, 0)
}
