package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/tiendita/internal/config"
	"github.com/heartmarshall/tiendita/internal/domain"
)

// Renderer paints the whole page after every event: query line, result list
// with counts and prices, then the category suggestion chips.
type Renderer struct {
	out      io.Writer
	currency string
	maxChips int
}

// NewRenderer creates a page renderer writing to out.
func NewRenderer(out io.Writer, cfg config.UIConfig) *Renderer {
	return &Renderer{
		out:      out,
		currency: cfg.CurrencySuffix,
		maxChips: cfg.MaxChips,
	}
}

// Page renders the full page for the given state. results must be the
// filtered view of st.Products for st.Query; chips the suggestion labels in
// display order.
func (r *Renderer) Page(st State, results []domain.Product, chips []string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "=== tiendita ===")

	if q := strings.TrimSpace(st.Query); q == "" {
		fmt.Fprintln(r.out, "buscar: (todo)")
	} else {
		fmt.Fprintf(r.out, "buscar: %s\n", st.Query)
	}

	fmt.Fprintln(r.out, countLine(len(results)))
	for _, p := range results {
		fmt.Fprintf(r.out, "  * %s  %s\n", p.Name, r.priceTag(p))
		if p.Description != "" {
			fmt.Fprintf(r.out, "      %s\n", p.Description)
		}
		if len(p.Categories) > 0 {
			fmt.Fprintf(r.out, "      [%s]\n", strings.Join(p.Categories, ", "))
		}
	}

	if len(chips) > 0 {
		fmt.Fprintf(r.out, "categorías: %s\n", chipLine(chips))
	}
}

// priceTag formats the price with exactly two decimals and the currency
// suffix, or the no-price placeholder.
func (r *Renderer) priceTag(p domain.Product) string {
	if !p.HasPrice() {
		return "—"
	}
	return fmt.Sprintf("%.2f %s", *p.Price, r.currency)
}

// countLine is singular for exactly one match, plural otherwise, with an
// explicit empty-state message at zero.
func countLine(n int) string {
	switch n {
	case 0:
		return "sin resultados"
	case 1:
		return "1 resultado"
	default:
		return fmt.Sprintf("%d resultados", n)
	}
}

// chipLine lists chips with their activation indices: "[1] agua [2] bebida".
func chipLine(chips []string) string {
	var b strings.Builder
	for i, c := range chips {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "[%d] %s", i+1, c)
	}
	return b.String()
}
