package labresults

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// DecodeAndValidate parses raw model output into a LabResultsSummary and
// applies the safety contract. Every string field of every test row is
// scanned: transcription models have been observed to smuggle interpretation
// into value or flag columns, not just test names.
func DecodeAndValidate(raw []byte, lang safety.Language) (*LabResultsSummary, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var data LabResultsSummary
	if err := dec.Decode(&data); err != nil {
		return nil, &safety.MalformedInputError{Err: err}
	}
	if dec.More() {
		return nil, &safety.MalformedInputError{Err: fmt.Errorf("trailing content after document object")}
	}

	if err := safety.CheckDisclaimer("limitations", data.Limitations, safety.DocumentLab, lang); err != nil {
		return nil, err
	}

	for i, test := range data.Tests {
		for _, f := range []struct{ name, text string }{
			{"test_name", test.TestName},
			{"value", test.Value},
			{"unit", test.Unit},
			{"reference_range", test.ReferenceRange},
			{"flag", test.Flag},
		} {
			path := fmt.Sprintf("tests[%d].%s", i, f.name)
			if err := safety.ScanField(path, f.text, lang); err != nil {
				return nil, err
			}
		}
	}

	return &data, nil
}
