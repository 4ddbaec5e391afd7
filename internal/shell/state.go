package shell

import "github.com/heartmarshall/tiendita/internal/domain"

// State is the page's authoritative data: the full product collection and
// the current raw search text. Events never mutate a State in place; each
// one derives the next value and the loop swaps it in whole.
type State struct {
	Products []domain.Product
	Query    string
}

// WithQuery returns a copy of the state with the raw query replaced.
func (s State) WithQuery(q string) State {
	s.Query = q
	return s
}

// WithProducts returns a copy of the state with the collection replaced.
func (s State) WithProducts(products []domain.Product) State {
	s.Products = products
	return s
}
