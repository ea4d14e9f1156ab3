package safety

import "fmt"

// Language selects the forbidden-phrase table and canonical disclaimer
// strings used during validation.
type Language string

const (
	LanguageEnglish    Language = "english"
	LanguageSpanish    Language = "spanish"
	LanguageFrench     Language = "french"
	LanguagePortuguese Language = "portuguese"
)

// ParseLanguage converts a request-supplied language selector into a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageSpanish, LanguageFrench, LanguagePortuguese:
		return Language(s), nil
	case "":
		return LanguageEnglish, nil
	}
	return "", fmt.Errorf("unsupported language: %q", s)
}

// Supported returns true if the language has a registered phrase table.
func (l Language) Supported() bool {
	_, ok := forbiddenPhrases[l]
	return ok
}
