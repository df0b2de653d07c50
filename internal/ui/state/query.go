package state

import (
	"unicode"

	"github.com/atomicstack/panoscope/internal/search"
)

// SetQuery updates the search query and its cursor position. Editing the
// query does not move the highlight; only Search does.
func (l *List) SetQuery(query string, cursor int) {
	l.Query = query
	l.QueryCursor = min(max(cursor, 0), len([]rune(query)))
}

// Search clears the current highlight and highlights the next item whose
// text contains query, centring it in a viewport of maxVisible rows. An
// empty query changes nothing. When nothing matches, no item stays
// highlighted and the viewport does not move.
func (l *List) Search(query string, forward bool, maxVisible int) bool {
	if query == "" {
		return false
	}
	current := l.Highlight
	l.Highlight = -1
	idx := search.Next(l.Texts(), current, query, forward)
	if idx < 0 {
		return false
	}
	l.Highlight = idx
	l.Cursor = idx
	l.CenterOn(idx, maxVisible)
	return true
}

// ClearHighlight removes the search highlight.
func (l *List) ClearHighlight() bool {
	if l.Highlight < 0 {
		return false
	}
	l.Highlight = -1
	return true
}

// QueryCursorPos returns the rune offset of the query cursor.
func (l *List) QueryCursorPos() int {
	runes := []rune(l.Query)
	if l.QueryCursor < 0 {
		return 0
	}
	if l.QueryCursor > len(runes) {
		return len(runes)
	}
	return l.QueryCursor
}

// InsertQueryText inserts text into the query at the cursor position.
func (l *List) InsertQueryText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetQuery(string(updated), pos+len(insert))
	return true
}

// DeleteQueryRuneBackward deletes a rune before the query cursor.
func (l *List) DeleteQueryRuneBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	l.SetQuery(string(updated), pos-1)
	return true
}

// DeleteQueryWordBackward deletes the word preceding the cursor.
func (l *List) DeleteQueryWordBackward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	l.SetQuery(string(updated), i)
	return true
}

// DeleteQueryToStart deletes everything before the cursor.
func (l *List) DeleteQueryToStart() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	if pos == 0 {
		return false
	}
	l.SetQuery(string(runes[pos:]), 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (l *List) MoveQueryCursorStart() bool {
	if l.QueryCursorPos() == 0 {
		return false
	}
	l.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (l *List) MoveQueryCursorEnd() bool {
	end := len([]rune(l.Query))
	if l.QueryCursorPos() == end {
		return false
	}
	l.QueryCursor = end
	return true
}

// MoveQueryCursorWordBackward moves the query cursor one word backward.
func (l *List) MoveQueryCursorWordBackward() bool {
	pos := l.QueryCursorPos()
	i := wordStart([]rune(l.Query), pos)
	if i == pos {
		return false
	}
	l.QueryCursor = i
	return true
}

// MoveQueryCursorWordForward moves the query cursor one word forward.
func (l *List) MoveQueryCursorWordForward() bool {
	runes := []rune(l.Query)
	pos := l.QueryCursorPos()
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	l.QueryCursor = i
	return true
}

// MoveQueryCursorRuneBackward moves the query cursor one rune backward.
func (l *List) MoveQueryCursorRuneBackward() bool {
	if l.QueryCursorPos() == 0 {
		return false
	}
	l.QueryCursor = l.QueryCursorPos() - 1
	return true
}

// MoveQueryCursorRuneForward moves the query cursor one rune forward.
func (l *List) MoveQueryCursorRuneForward() bool {
	pos := l.QueryCursorPos()
	if pos >= len([]rune(l.Query)) {
		return false
	}
	l.QueryCursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
