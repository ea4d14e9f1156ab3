package soapnote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// DecodeAndValidate parses raw model output into a SOAPNoteData and applies
// the safety contract: strict schema decode, exact disclaimer check, then a
// forbidden-phrase scan over every free-text field in a fixed order.
// Validation is all-or-nothing and fail-fast: the first violation is
// returned and scanning stops. On success the decoded record is returned;
// no partially validated record is ever returned or persisted.
func DecodeAndValidate(raw []byte, lang safety.Language) (*SOAPNoteData, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var data SOAPNoteData
	if err := dec.Decode(&data); err != nil {
		return nil, &safety.MalformedInputError{Err: err}
	}
	if dec.More() {
		return nil, &safety.MalformedInputError{Err: fmt.Errorf("trailing content after document object")}
	}

	if err := safety.CheckDisclaimer("disclaimer", data.Disclaimer, safety.DocumentSOAPNote, lang); err != nil {
		return nil, err
	}

	if data.VitalSigns != nil {
		if err := data.VitalSigns.Validate(); err != nil {
			return nil, &safety.MalformedInputError{Err: err}
		}
	}

	// Free-text scan order is fixed so the reported violation is
	// deterministic. Vital signs are numeric and exempt; the disclaimer
	// field is checked for exactness above, not scanned (the canonical
	// strings themselves mention diagnosis).
	for _, f := range []struct{ path, text string }{
		{"chief_complaint", data.ChiefComplaint},
		{"subjective", data.Subjective},
		{"objective", data.Objective},
		{"clinical_impression", data.ClinicalImpression},
	} {
		if err := safety.ScanField(f.path, f.text, lang); err != nil {
			return nil, err
		}
	}
	for i, s := range data.Interventions {
		if err := safety.ScanField(fmt.Sprintf("interventions[%d]", i), s, lang); err != nil {
			return nil, err
		}
	}
	for i, m := range data.Medications {
		if err := safety.ScanField(fmt.Sprintf("medications[%d].name", i), m.Name, lang); err != nil {
			return nil, err
		}
		if err := safety.ScanField(fmt.Sprintf("medications[%d].dosage", i), m.Dosage, lang); err != nil {
			return nil, err
		}
	}
	for i, s := range data.Allergies {
		if err := safety.ScanField(fmt.Sprintf("allergies[%d]", i), s, lang); err != nil {
			return nil, err
		}
	}

	return &data, nil
}
