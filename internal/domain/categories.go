package domain

import "strings"

// ParseCategories splits the add form's comma-separated label list: each
// piece is trimmed, empties are dropped, exact duplicates are removed, and
// first-occurrence order is kept. Input with nothing usable yields nil.
//
// Deduplication here is case-sensitive on purpose: "Agua" and "agua" are two
// labels as stored, even though both match a search for either spelling.
func ParseCategories(raw string) []string {
	parts := strings.Split(raw, ",")

	var out []string
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
