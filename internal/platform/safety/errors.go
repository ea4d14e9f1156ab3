package safety

import "fmt"

// MalformedInputError reports model output that does not parse as JSON or
// does not match the expected document schema. It is a schema failure, not a
// safety failure: callers may regenerate and retry.
type MalformedInputError struct {
	Err error
}

func (e *MalformedInputError) Error() string {
	return "malformed model output: " + e.Err.Error()
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// MissingDisclaimerError reports an absent mandatory disclaimer field.
// Treated as a safety failure, not a schema failure.
type MissingDisclaimerError struct {
	Field string
}

func (e *MissingDisclaimerError) Error() string {
	return fmt.Sprintf("required disclaimer missing in field %q", e.Field)
}

// IncorrectDisclaimerError reports a disclaimer field whose text deviates
// from the canonical string registered for the language.
type IncorrectDisclaimerError struct {
	Field string
}

func (e *IncorrectDisclaimerError) Error() string {
	return fmt.Sprintf("disclaimer in field %q does not match the required text", e.Field)
}

// ForbiddenPhraseError reports disallowed clinical language found in a
// free-text field. It is always fatal to the generation attempt; the content
// is never corrected, truncated, or returned.
type ForbiddenPhraseError struct {
	Field  string
	Phrase string
}

func (e *ForbiddenPhraseError) Error() string {
	return fmt.Sprintf("forbidden phrase %q detected in field %q", e.Phrase, e.Field)
}
