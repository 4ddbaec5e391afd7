package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_BuildsStartupCollection(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	products, err := svc.Seed(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, products)

	// The last seed row lands first: rows replay through AddProduct, which
	// prepends.
	assert.Equal(t, "Jabón Zote 200 g", products[0].Name)
	assert.Equal(t, "Bonafont 1 Lt", products[len(products)-1].Name)
}

func TestSeed_RowsPassTheConstructionBoundary(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	products, err := svc.Seed(context.Background())
	require.NoError(t, err)

	seen := make(map[int64]struct{})
	for _, p := range products {
		assert.NotEmpty(t, strings.TrimSpace(p.Name))
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate ID %d", p.ID)
		seen[p.ID] = struct{}{}
		for _, c := range p.Categories {
			assert.Equal(t, strings.TrimSpace(c), c, "categories come out trimmed")
			assert.NotEmpty(t, c)
		}
		if p.HasPrice() {
			assert.GreaterOrEqual(t, *p.Price, 0.0)
		}
	}
}

func TestSeed_KnownRowsPresent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	products, err := svc.Seed(context.Background())
	require.NoError(t, err)

	byName := make(map[string]int)
	for i, p := range products {
		byName[p.Name] = i
	}

	i, ok := byName["Bonafont 1 Lt"]
	require.True(t, ok)
	require.True(t, products[i].HasPrice())
	assert.Equal(t, 17.5, *products[i].Price)
	assert.Equal(t, []string{"agua", "bebida"}, products[i].Categories)

	j, ok := byName["Jabón Zote 200 g"]
	require.True(t, ok)
	assert.False(t, products[j].HasPrice(), "seed row with empty price stays priceless")
}
