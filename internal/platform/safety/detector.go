package safety

import "strings"

// FindForbidden scans text for the first phrase (in input order) whose
// normalized-collapsed form is a substring of the text's normalized-collapsed
// form. It returns the matched phrase as listed in the table and true, or
// ("", false) when no phrase matches.
//
// Collapsed-substring matching is deliberate: it catches obfuscation through
// inserted spaces, punctuation, or diacritics ("p n e u m o n i a",
// "p.neumon.ia", "pnéumònia" all match "pneumonia"). The cost is that a
// phrase can also match inside an unrelated longer word; for a safety gate
// that trade-off runs in the right direction and is kept on purpose.
func FindForbidden(text string, phrases []string) (string, bool) {
	collapsed := Normalize(text).Collapsed
	if collapsed == "" {
		return "", false
	}
	for _, phrase := range phrases {
		pc := Normalize(phrase).Collapsed
		if pc == "" {
			continue
		}
		if strings.Contains(collapsed, pc) {
			return phrase, true
		}
	}
	return "", false
}

// ScanField runs FindForbidden for the given language's phrase table and
// wraps a hit in a ForbiddenPhraseError carrying the field path. Returns nil
// when the text is clean.
func ScanField(field, text string, lang Language) error {
	if phrase, found := FindForbidden(text, ForbiddenPhrases(lang)); found {
		return &ForbiddenPhraseError{Field: field, Phrase: phrase}
	}
	return nil
}
