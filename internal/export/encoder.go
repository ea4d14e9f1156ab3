package export

import (
	"encoding/json"
	"fmt"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
)

// ContentTypeFHIRJSON is the media type for exported bundles.
const ContentTypeFHIRJSON = "application/fhir+json"

// EncodingError reports a failed serialization of an otherwise valid bundle.
// It should be exceedingly rare and is treated as a defect, not a user
// error.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("bundle encoding failed: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// Encode serializes a bundle to FHIR JSON and runs the outgoing-resource
// validator over the result. Struct field order makes the output
// deterministic for identical input.
func Encode(bundle *fhir.Bundle, validator *fhir.Validator) ([]byte, error) {
	data, err := json.Marshal(bundle)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	if result := validator.ValidateBundle(data); !result.Valid {
		return nil, &EncodingError{Err: fmt.Errorf("outgoing bundle failed validation: %s", result.Issues[0].Diagnostics)}
	}
	return data, nil
}
