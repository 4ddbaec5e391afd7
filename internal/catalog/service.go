// Package catalog implements the product catalog's query engine and its
// construction boundary. The collection itself is owned by the caller (the
// UI shell); every operation here reads the collection it is handed and
// returns fresh values, never mutating the input.
package catalog

import (
	"log/slog"

	"github.com/bwmarrin/snowflake"
)

// Service bundles the catalog operations. Search and ListCategories are pure
// reads; AddProduct is the only constructor and the only way a product comes
// into existence.
type Service struct {
	log *slog.Logger
	ids *snowflake.Node
}

// NewService creates a catalog service that issues product IDs from node.
func NewService(log *slog.Logger, ids *snowflake.Node) *Service {
	return &Service{
		log: log.With("service", "catalog"),
		ids: ids,
	}
}
