package catalog

import (
	"strings"

	"github.com/heartmarshall/tiendita/internal/domain"
)

// AddProductInput carries the add form's raw text fields, exactly as
// submitted. Price and Categories stay free text here; parsing them is the
// construction step's job and never fails.
type AddProductInput struct {
	Name        string
	Description string
	Price       string
	Categories  string
}

// Validate checks the one hard rule: a product needs a non-blank name.
func (i *AddProductInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}
