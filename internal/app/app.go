package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bwmarrin/snowflake"

	"github.com/heartmarshall/tiendita/internal/catalog"
	"github.com/heartmarshall/tiendita/internal/config"
	"github.com/heartmarshall/tiendita/internal/shell"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, builds the catalog service, seeds the startup collection, and
// hands control to the interactive shell until the user quits.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting tiendita",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	node, err := snowflake.NewNode(cfg.Catalog.NodeID)
	if err != nil {
		return fmt.Errorf("id node %d: %w", cfg.Catalog.NodeID, err)
	}

	svc := catalog.NewService(logger, node)

	products, err := svc.Seed(ctx)
	if err != nil {
		return err
	}
	logger.Info("catalog seeded", slog.Int("products", len(products)))

	sh := shell.New(cfg.UI, logger, svc, os.Stdin, os.Stdout)
	return sh.Run(ctx, products)
}
