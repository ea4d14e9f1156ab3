package fhir

import (
	"errors"
	"net/http"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// ErrorResponse maps a validation or workflow error to an HTTP status and an
// OperationOutcome body. Safety failures are reported unambiguously: a
// forbidden phrase or disclaimer problem always blocks, never warns.
func ErrorResponse(err error) (int, *OperationOutcome) {
	var malformed *safety.MalformedInputError
	if errors.As(err, &malformed) {
		return http.StatusBadRequest, NewOperationOutcome(IssueSeverityError, IssueTypeStructure, err.Error())
	}
	var missing *safety.MissingDisclaimerError
	if errors.As(err, &missing) {
		return http.StatusUnprocessableEntity, ValidationOutcome(missing.Field, err.Error())
	}
	var incorrect *safety.IncorrectDisclaimerError
	if errors.As(err, &incorrect) {
		return http.StatusUnprocessableEntity, ValidationOutcome(incorrect.Field, err.Error())
	}
	var forbidden *safety.ForbiddenPhraseError
	if errors.As(err, &forbidden) {
		return http.StatusUnprocessableEntity, BlockedOutcome(err.Error())
	}
	return http.StatusInternalServerError, ErrorOutcome(err.Error())
}
