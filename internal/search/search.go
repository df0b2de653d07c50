// Package search implements the circular, case-insensitive substring search
// used by list windows.
package search

import "strings"

// Next returns the index of the first item after current (or before it when
// forward is false) whose text contains query, ignoring case. The scan wraps
// around the list and visits every item exactly once, so current itself is
// checked last. A negative current means nothing is highlighted. Next
// returns -1 when query is empty, items is empty, or nothing matches.
//
// Backward searches walk backward through the list. The bookmarklet this
// replaces started at current-1 but then scanned upward, so repeated
// backward searches could land on the same match.
func Next(items []string, current int, query string, forward bool) int {
	n := len(items)
	if query == "" || n == 0 {
		return -1
	}
	step := 1
	if !forward {
		step = -1
	}
	start := wrap(current+step, n)
	if current < 0 && !forward {
		// No highlight: backward starts from the last item.
		start = n - 1
	}
	needle := strings.ToLower(query)
	for i := 0; i < n; i++ {
		idx := wrap(start+i*step, n)
		if strings.Contains(strings.ToLower(items[idx]), needle) {
			return idx
		}
	}
	return -1
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
