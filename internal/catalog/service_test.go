package catalog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tiendita/internal/domain"
)

// newTestService creates a Service with a discard logger and a real ID node.
func newTestService(t *testing.T) *Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), node)
}

func ptrFloat(v float64) *float64 { return &v }

// fixture returns a small collection in a known order.
func fixture() []domain.Product {
	return []domain.Product{
		{ID: 3, Name: "Gansito", Description: "Pastelito relleno", Categories: []string{"dulces", "botana"}},
		{ID: 2, Name: "Sabritas", Description: "Papas fritas", Categories: []string{"frituras"}},
		{ID: 1, Name: "Bonafont 1 Lt", Description: "Agua purificada", Price: ptrFloat(17.5), Categories: []string{"agua", "bebida"}},
	}
}
