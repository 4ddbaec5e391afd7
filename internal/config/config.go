package config

// Config is the root application configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// UIConfig holds the terminal page's presentation settings.
type UIConfig struct {
	// CurrencySuffix is appended after every rendered price, two decimals
	// always (e.g. "17.50 MXN").
	CurrencySuffix string `yaml:"currency_suffix" env:"UI_CURRENCY_SUFFIX" env-default:"MXN"`
	// MaxChips caps how many category suggestion chips the page shows.
	// 0 means no cap.
	MaxChips int `yaml:"max_chips" env:"UI_MAX_CHIPS" env-default:"12"`
	// Prompt is printed before every input line.
	Prompt string `yaml:"prompt" env:"UI_PROMPT" env-default:"> "`
}

// CatalogConfig holds catalog service settings.
type CatalogConfig struct {
	// NodeID seeds the snowflake ID generator. Any value in [0, 1023] works
	// for a single-process tool; it exists so two instances sharing logs
	// stay distinguishable.
	NodeID int64 `yaml:"node_id" env:"CATALOG_NODE_ID" env-default:"1"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
