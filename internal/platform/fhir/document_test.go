package fhir

import (
	"testing"
	"time"
)

func TestNewSection(t *testing.T) {
	code := &CodeableConcept{Coding: []Coding{LOINCCoding(LOINCResultsSection, "Results")}}

	withEntries := NewSection("Results", code, []Reference{{Reference: "urn:uuid:abc"}})
	if withEntries.EmptyReason != nil {
		t.Error("section with entries must not carry an emptyReason")
	}

	empty := NewSection("Results", code, nil)
	if empty.EmptyReason == nil {
		t.Fatal("empty section must carry a structured emptyReason, not be omitted")
	}
	if empty.EmptyReason.Coding[0].Code != "unavailable" {
		t.Errorf("emptyReason code = %q, want unavailable", empty.EmptyReason.Coding[0].Code)
	}
}

func TestNewDocumentBundle(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	comp := &Composition{ResourceType: "Composition", ID: "comp-1", Status: "final"}
	patient := &Patient{ResourceType: "Patient", ID: "pat-1"}

	b := NewDocumentBundle("bundle-1", comp, []any{patient}, []string{"pat-1"}, ts)

	if b.Type != BundleTypeDocument {
		t.Errorf("type = %q, want document", b.Type)
	}
	if b.Timestamp != "2026-03-14T10:30:00Z" {
		t.Errorf("timestamp = %q", b.Timestamp)
	}
	if len(b.Entry) != 2 {
		t.Fatalf("entries = %d, want 2", len(b.Entry))
	}
	if b.Entry[0].FullURL != "urn:uuid:comp-1" {
		t.Errorf("first fullUrl = %q, want urn:uuid:comp-1", b.Entry[0].FullURL)
	}
	if _, ok := b.Entry[0].Resource.(*Composition); !ok {
		t.Error("first entry of a document bundle must be the Composition")
	}
	if b.Identifier == nil || b.Identifier.Value != "urn:uuid:bundle-1" {
		t.Error("document bundle must carry a urn:uuid identifier")
	}
	if b.Meta == nil || len(b.Meta.Profile) == 0 || b.Meta.Profile[0] != ProfileIPSBundle {
		t.Error("document bundle must assert the IPS bundle profile")
	}
}

func TestNewCollectionBundle(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	entries := []BundleEntry{{FullURL: "DiagnosticReport/dr-1", Resource: &DiagnosticReport{ResourceType: "DiagnosticReport", ID: "dr-1", Status: "preliminary"}}}

	b := NewCollectionBundle("bundle-2", entries, ts)
	if b.Type != BundleTypeCollection {
		t.Errorf("type = %q, want collection", b.Type)
	}
	if len(b.Entry) != 1 {
		t.Errorf("entries = %d, want 1", len(b.Entry))
	}
}

func TestFormatReference(t *testing.T) {
	if got := FormatReference("Patient", "123"); got != "Patient/123" {
		t.Errorf("FormatReference = %q", got)
	}
	if got := URNReference("abc"); got != "urn:uuid:abc" {
		t.Errorf("URNReference = %q", got)
	}
}
