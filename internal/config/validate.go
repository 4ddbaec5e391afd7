package config

import (
	"fmt"
	"strings"
)

// snowflake node IDs are 10 bits.
const maxNodeID = 1023

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Catalog.NodeID < 0 || c.Catalog.NodeID > maxNodeID {
		return fmt.Errorf("catalog.node_id must be in [0, %d] (got %d)", maxNodeID, c.Catalog.NodeID)
	}

	if c.UI.MaxChips < 0 {
		return fmt.Errorf("ui.max_chips must be >= 0 (got %d)", c.UI.MaxChips)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\" (got %q)", c.Log.Format)
	}

	return nil
}
