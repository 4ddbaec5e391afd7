// Command tiendita runs the single-page product catalog in the terminal:
// type products in, search them with accent-insensitive text, pick category
// chips. The catalog lives in memory and is rebuilt from the embedded seed
// set on every start.
//
// Configuration comes from CONFIG_PATH (YAML) and/or environment variables;
// see internal/config. Exit codes: 0 = clean quit, 1 = startup error.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/tiendita/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tiendita: %v\n", err)
		os.Exit(1)
	}
}
