// Package safety implements the output-safety contract applied to all
// AI-generated clinical text: text normalization, forbidden-phrase detection,
// per-language phrase tables and canonical disclaimer strings, and the
// validation error taxonomy shared by the document validators.
//
// Everything in this package is pure and holds no mutable state; the
// package-level phrase and disclaimer tables are immutable after init and are
// safe for unsynchronized concurrent reads.
package safety

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizedText holds the two canonical forms of an input string used for
// phrase comparison. Spaced is lowercased, diacritic-stripped, with every
// non-alphanumeric run replaced by a single space; Collapsed is Spaced with
// all spaces removed.
type NormalizedText struct {
	Spaced    string
	Collapsed string
}

// Normalize canonicalizes arbitrary free text for comparison. The steps run
// in a fixed order: lowercase fold, NFD decomposition with combining marks
// dropped ("café" becomes "cafe"), every character outside ASCII [a-z0-9]
// replaced by a space, space runs collapsed, leading/trailing space trimmed.
//
// Normalization is deterministic and idempotent: normalizing an already
// collapsed form yields itself. Empty or whitespace-only input yields empty
// forms.
func Normalize(text string) NormalizedText {
	decomposed := norm.NFD.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining diacritical mark, dropped
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	spaced := strings.Join(strings.Fields(b.String()), " ")
	return NormalizedText{
		Spaced:    spaced,
		Collapsed: strings.ReplaceAll(spaced, " ", ""),
	}
}
