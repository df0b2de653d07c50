package state

// List holds the per-window list state: cursor, search highlight, viewport
// and the search query being edited.
type List struct {
	Items          []Item
	Cursor         int
	Highlight      int
	ViewportOffset int
	Query          string
	QueryCursor    int
}

// NewList constructs a List with nothing highlighted.
func NewList(items []Item) *List {
	l := &List{Highlight: -1}
	l.SetItems(items)
	return l
}

// SetItems replaces the items, keeping the cursor and viewport when they are
// still in range. The highlight is cleared.
func (l *List) SetItems(items []Item) {
	l.Items = CloneItems(items)
	l.Highlight = -1
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		l.Cursor = 0
	}
	if l.ViewportOffset < 0 || l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// Texts returns the visible text of every item.
func (l *List) Texts() []string {
	out := make([]string, len(l.Items))
	for i, item := range l.Items {
		out[i] = item.Text
	}
	return out
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOfLink returns the index of the first item linking to name.
func (l *List) IndexOfLink(name string) int {
	if name == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.Link == name {
			return i
		}
	}
	return -1
}

// Visible returns the index range [start, end) shown in a viewport of
// maxVisible rows.
func (l *List) Visible(maxVisible int) (int, int) {
	start := l.ViewportOffset
	if start < 0 || start >= len(l.Items) {
		start = 0
	}
	end := start + maxVisible
	if maxVisible <= 0 || end > len(l.Items) {
		end = len(l.Items)
	}
	return start, end
}
