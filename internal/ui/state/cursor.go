package state

// MoveCursorUp moves the cursor to the previous item.
func (l *List) MoveCursorUp() bool {
	return l.moveCursorBy(-1)
}

// MoveCursorDown moves the cursor to the next item.
func (l *List) MoveCursorDown() bool {
	return l.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.moveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.moveCursorBy(l.pageSize(maxVisible))
}

func (l *List) moveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	l.Cursor += delta
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	return l.Cursor != old
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	return size
}

// SetCursor places the cursor on idx when it is in range.
func (l *List) SetCursor(idx int) bool {
	if idx < 0 || idx >= len(l.Items) || idx == l.Cursor {
		return false
	}
	l.Cursor = idx
	return true
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := l.maxOffset(maxVisible)
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	upper := l.ViewportOffset + maxVisible - 1
	if l.Cursor > upper {
		l.ViewportOffset = min(max(l.Cursor-maxVisible+1, 0), maxOffset)
	}
}

// CenterOn scrolls so idx sits in the middle of the viewport, as far as the
// list bounds allow.
func (l *List) CenterOn(idx, maxVisible int) {
	if idx < 0 || idx >= len(l.Items) || maxVisible <= 0 {
		return
	}
	l.ViewportOffset = min(max(idx-maxVisible/2, 0), l.maxOffset(maxVisible))
}

// Scroll shifts the viewport by delta rows without moving past either end.
// The cursor is dragged along when it would leave the viewport.
func (l *List) Scroll(delta, maxVisible int) bool {
	if len(l.Items) == 0 || maxVisible <= 0 {
		return false
	}
	old := l.ViewportOffset
	l.ViewportOffset = min(max(l.ViewportOffset+delta, 0), l.maxOffset(maxVisible))
	if l.ViewportOffset == old {
		return false
	}
	if l.Cursor < l.ViewportOffset {
		l.Cursor = l.ViewportOffset
	}
	if last := l.ViewportOffset + maxVisible - 1; l.Cursor > last {
		l.Cursor = last
	}
	return true
}

func (l *List) maxOffset(maxVisible int) int {
	return max(len(l.Items)-maxVisible, 0)
}
