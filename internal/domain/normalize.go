package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Unicode "Combining Diacritical Marks" block
// (U+0300–U+036F). Only marks from this block are stripped, so scripts whose
// decomposition produces other mark classes pass through untouched.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// stripMarks decomposes compatibly (NFKD) and drops combining diacritical
// marks. transform.String resets the transformer before use, so one shared
// value is safe in the tool's single-threaded event model.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(combiningDiacritics)))

// NormalizeKey turns text into its comparison key: lower-cased, with accents
// removed, so "Água" and "agua" compare equal. The key keeps the input's
// whitespace; trimming is the caller's business. Keys are for comparison
// only, never for display.
//
// Total over any string, including empty and non-Latin input, and
// idempotent: NormalizeKey(NormalizeKey(s)) == NormalizeKey(s).
func NormalizeKey(s string) string {
	s = strings.ToLower(s)
	key, _, err := transform.String(stripMarks, s)
	if err != nil {
		// The chain cannot fail on UTF-8 input; keep the function total anyway.
		return s
	}
	return key
}
