package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest ranks names against query for the open-by-name prompt. Exact and
// prefix matches come first, then substring matches, then fuzzy matches by
// distance. At most limit names are returned; limit <= 0 means no limit.
func Suggest(names []string, query string, limit int) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)
	type scored struct {
		name  string
		tier  int
		dist  int
		index int
	}
	seen := make(map[int]struct{}, len(names))
	var out []scored
	for i, name := range names {
		ln := strings.ToLower(name)
		switch {
		case ln == lower:
			out = append(out, scored{name, 0, 0, i})
		case strings.HasPrefix(ln, lower):
			out = append(out, scored{name, 1, len(ln) - len(lower), i})
		case strings.Contains(ln, lower):
			out = append(out, scored{name, 2, len(ln) - len(lower), i})
		default:
			continue
		}
		seen[i] = struct{}{}
	}
	for _, rank := range fuzzy.RankFindNormalizedFold(trimmed, names) {
		if _, ok := seen[rank.OriginalIndex]; ok {
			continue
		}
		out = append(out, scored{rank.Target, 3, rank.Distance, rank.OriginalIndex})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].tier != out[j].tier {
			return out[i].tier < out[j].tier
		}
		if out[i].dist != out[j].dist {
			return out[i].dist < out[j].dist
		}
		return out[i].index < out[j].index
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	result := make([]string, len(out))
	for i, s := range out {
		result[i] = s.name
	}
	return result
}

// BestMatch returns the top suggestion for query, or "" when nothing fits.
func BestMatch(names []string, query string) string {
	if s := Suggest(names, query, 1); len(s) > 0 {
		return s[0]
	}
	return ""
}
