package domain

// Product is a single catalog record. A Product is immutable once
// constructed: the add operation builds the value, assigns its ID, and every
// later read works on copies. There is no update or delete.
type Product struct {
	ID          int64
	Name        string   // never empty or whitespace-only once constructed
	Description string   // may be empty
	Price       *float64 // nil means "no price advertised"; finite and >= 0 when set
	Categories  []string // trimmed, non-empty, exact-duplicate-free, insertion order
}

// HasPrice reports whether the product advertises a price.
func (p Product) HasPrice() bool {
	return p.Price != nil
}
