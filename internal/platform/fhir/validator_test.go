package fhir

import (
	"encoding/json"
	"testing"
	"time"
)

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestValidateResource_Valid(t *testing.T) {
	v := NewValidator()
	dr := &DiagnosticReport{
		ResourceType: "DiagnosticReport",
		ID:           "dr-1",
		Status:       "preliminary",
		Code:         CodeableConcept{Text: "Imaging findings"},
		Subject:      &Reference{Reference: "Patient/pat-1"},
	}
	result := v.ValidateResource(mustMarshal(t, dr))
	if !result.Valid {
		t.Errorf("valid resource rejected: %+v", result.Issues)
	}
}

func TestValidateResource_Errors(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name string
		json string
	}{
		{"missing resourceType", `{"status":"final"}`},
		{"unknown resourceType", `{"resourceType":"Spaceship","status":"final"}`},
		{"missing status", `{"resourceType":"DiagnosticReport"}`},
		{"illegal status", `{"resourceType":"DiagnosticReport","status":"bogus"}`},
		{"malformed reference", `{"resourceType":"DiagnosticReport","status":"final","subject":{"reference":"not a ref"}}`},
		{"not json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateResource(json.RawMessage(tt.json))
			if result.Valid {
				t.Error("invalid resource accepted")
			}
		})
	}
}

func TestValidateResource_URNReferenceAccepted(t *testing.T) {
	v := NewValidator()
	raw := `{"resourceType":"Provenance","target":[{"reference":"urn:uuid:8f14e45f-ceea-467f-a8d4-111111111111"}],"recorded":"2026-01-01T00:00:00Z","agent":[]}`
	result := v.ValidateResource(json.RawMessage(raw))
	if !result.Valid {
		t.Errorf("urn:uuid reference rejected: %+v", result.Issues)
	}
}

func TestValidateBundle(t *testing.T) {
	v := NewValidator()
	ts := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	comp := &Composition{
		ResourceType: "Composition", ID: "c1", Status: "final",
		Type: CodeableConcept{Coding: []Coding{LOINCCoding(LOINCPatientSummaryDoc, "Patient summary Document")}},
		Date: "2026-03-14", Author: []Reference{{Reference: "Practitioner/pr-1"}}, Title: "Patient Summary",
	}
	bundle := NewDocumentBundle("b1", comp, nil, nil, ts)

	result := v.ValidateBundle(mustMarshal(t, bundle))
	if !result.Valid {
		t.Errorf("valid bundle rejected: %+v", result.Issues)
	}
}

func TestValidateBundle_FirstEntryMustBeComposition(t *testing.T) {
	v := NewValidator()
	raw := `{"resourceType":"Bundle","type":"document","entry":[{"resource":{"resourceType":"Patient"}}]}`
	result := v.ValidateBundle(json.RawMessage(raw))
	if result.Valid {
		t.Error("document bundle without leading Composition accepted")
	}
}

func TestValidateBundle_EntryIssuesSurface(t *testing.T) {
	v := NewValidator()
	raw := `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"DiagnosticReport","status":"nope"}}]}`
	result := v.ValidateBundle(json.RawMessage(raw))
	if result.Valid {
		t.Fatal("bundle with invalid entry accepted")
	}
	oo := result.ToOperationOutcome()
	if len(oo.Issue) == 0 {
		t.Error("issues not carried into OperationOutcome")
	}
}
