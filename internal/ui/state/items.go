package state

// Item is one row of a list window. Link names the object the row opens and
// is empty for plain rows.
type Item struct {
	Text string
	Link string
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
