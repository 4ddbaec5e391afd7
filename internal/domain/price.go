package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice reads the add form's optional price field. Absence wins over
// every malformed input: blank text, unparseable text, NaN, infinities and
// negative amounts all yield nil rather than an error.
func ParsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}
