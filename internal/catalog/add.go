package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tiendita/internal/domain"
	"github.com/heartmarshall/tiendita/pkg/ctxutil"
)

// AddProduct validates the input, constructs the product, and returns a new
// collection with it prepended (most-recent-first). The input collection is
// left untouched; on rejection it comes back unchanged alongside the error,
// so the caller's state survives a bad submit.
func (s *Service) AddProduct(ctx context.Context, products []domain.Product, input AddProductInput) ([]domain.Product, domain.Product, error) {
	if err := input.Validate(); err != nil {
		return products, domain.Product{}, err
	}

	p := domain.Product{
		ID:          s.ids.Generate().Int64(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       domain.ParsePrice(input.Price),
		Categories:  domain.ParseCategories(input.Categories),
	}

	next := make([]domain.Product, 0, len(products)+1)
	next = append(next, p)
	next = append(next, products...)

	s.log.InfoContext(ctx, "product added",
		slog.Int64("product_id", p.ID),
		slog.String("name", p.Name),
		slog.Int("categories", len(p.Categories)),
		slog.String("event_id", ctxutil.EventIDFromCtx(ctx)),
	)

	return next, p, nil
}
