// Package render finalizes gloss strings: it attaches non-manual markers
// and normalizes whitespace.
package render

import (
	"strings"

	"github.com/signbridge/islgloss/classify"
)

// Non-manual markers. They denote facial/grammatical cues accompanying
// the signs, not signs themselves. They attach at the very end of the
// clause gloss.
const (
	YesNoMarker = "[Y/N?]"
	WhMarker    = "[WH?]"
)

// Finalize appends the non-manual marker for question types and collapses
// whitespace. Negation is already folded into the body as the literal
// token NOT by the transformer; the flag is accepted for contract
// completeness and not re-examined.
func Finalize(body string, typ classify.Type, negation bool) string {
	switch typ {
	case classify.YesNoQuestion:
		body += " " + YesNoMarker
	case classify.WhQuestion:
		body += " " + WhMarker
	}
	return Collapse(body)
}

// Collapse reduces every run of whitespace to a single space and trims
// the ends.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FingerSpell renders a word letter by letter, uppercased and space
// separated, for words that have no sign of their own (proper nouns).
func FingerSpell(word string) string {
	letters := strings.Split(strings.ToUpper(word), "")
	return strings.Join(letters, " ")
}
