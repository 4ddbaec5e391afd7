package catalog

import (
	"strings"

	"github.com/heartmarshall/tiendita/internal/domain"
)

// Search returns the products matching rawQuery, preserving collection
// order. A query that trims to nothing matches everything and returns the
// collection as-is, with no normalization work. Otherwise the query is
// normalized once, and a product matches when the normalized query is a
// substring of its normalized name, its normalized description, or at least
// one normalized category label.
func (s *Service) Search(products []domain.Product, rawQuery string) []domain.Product {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return products
	}

	key := domain.NormalizeKey(query)
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, key) {
			matched = append(matched, p)
		}
	}
	return matched
}

// matches is the containment predicate: OR across the three fields, OR
// across all category labels.
func matches(p domain.Product, key string) bool {
	if strings.Contains(domain.NormalizeKey(p.Name), key) {
		return true
	}
	if strings.Contains(domain.NormalizeKey(p.Description), key) {
		return true
	}
	for _, c := range p.Categories {
		if strings.Contains(domain.NormalizeKey(c), key) {
			return true
		}
	}
	return false
}
