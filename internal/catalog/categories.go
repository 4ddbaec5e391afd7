package catalog

import (
	"sort"
	"strings"

	"github.com/heartmarshall/tiendita/internal/domain"
)

// ListCategories returns every distinct category label across the
// collection, sorted byte-wise ascending (uppercase sorts before lowercase).
// Labels are trimmed, empties dropped, and duplicates removed by exact
// string equality, not by normalized key: the suggestion list shows tags as
// stored, and matching against them normalizes at search time instead.
func (s *Service) ListCategories(products []domain.Product) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, p := range products {
		for _, c := range p.Categories {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			labels = append(labels, c)
		}
	}
	sort.Strings(labels)
	return labels
}
