package catalog

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/tiendita/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

// seedProduct mirrors one row of seed.yaml. The fields are raw form text so
// that seeding flows through the same construction boundary as interactive
// input and obeys the same invariants.
type seedProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Categories  string `yaml:"categories"`
}

// Seed builds the fixed startup collection by replaying the embedded rows
// through AddProduct. Rows are listed oldest-first in seed.yaml; prepending
// leaves the newest row at the top, the same order interactive adds produce.
// The collection is rebuilt from scratch on every process start.
func (s *Service) Seed(ctx context.Context) ([]domain.Product, error) {
	var rows []seedProduct
	if err := yaml.Unmarshal(seedYAML, &rows); err != nil {
		return nil, fmt.Errorf("seed: decode embedded catalog: %w", err)
	}

	var products []domain.Product
	for i, row := range rows {
		next, _, err := s.AddProduct(ctx, products, AddProductInput(row))
		if err != nil {
			return nil, fmt.Errorf("seed: row %d (%q): %w", i, row.Name, err)
		}
		products = next
	}
	return products, nil
}
