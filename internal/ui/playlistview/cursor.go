package playlistview

// cursor tracks the highlighted row and the scroll offset. The list length
// and viewport height are passed in since both change with the playlist and
// the terminal.
type cursor struct {
	pos    int
	offset int // first visible row
	margin int // rows kept visible above/below pos
}

// move shifts the cursor by delta rows, clamped to the list.
func (c *cursor) move(delta, listLen, height int) {
	c.jump(c.pos+delta, listLen, height)
}

// jump places the cursor at pos, clamped to the list.
func (c *cursor) jump(pos, listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

func (c *cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

// scroll moves the viewport without moving the cursor.
func (c *cursor) scroll(delta, listLen, height int) {
	c.offset = clamp(c.offset+delta, max(listLen-height, 0))
}

// visibleRange returns the visible rows [start, end).
func (c cursor) visibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
