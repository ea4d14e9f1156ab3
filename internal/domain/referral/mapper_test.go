package referral

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
)

func TestMapServiceRequest(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	r := &Referral{
		ID:         uuid.New(),
		PatientID:  uuid.New(),
		Specialty:  "cardiology",
		Reason:     "Clinician-requested specialist assessment",
		Priority:   "urgent",
		Notes:      "Patient prefers morning appointments",
		Status:     "active",
		AuthoredBy: "clin-1",
		CreatedAt:  created,
	}
	refs := Refs{
		Patient:      fhir.Reference{Reference: "Patient/p1"},
		Practitioner: fhir.Reference{Reference: "Practitioner/c1"},
	}

	sr := Map(r, refs, func() string { return "sr-1" })

	if sr.Status != "active" || sr.Intent != "order" || sr.Priority != "urgent" {
		t.Errorf("status/intent/priority = %q/%q/%q", sr.Status, sr.Intent, sr.Priority)
	}
	if sr.Code.Text != "Referral to cardiology" {
		t.Errorf("code text = %q", sr.Code.Text)
	}
	if sr.Requester == nil || sr.Requester.Reference != "Practitioner/c1" {
		t.Errorf("requester = %+v", sr.Requester)
	}
	if len(sr.ReasonCode) != 1 || len(sr.Note) != 1 {
		t.Errorf("reason/note = %+v / %+v", sr.ReasonCode, sr.Note)
	}
	if sr.AuthoredOn != "2026-03-14T09:00:00Z" {
		t.Errorf("authoredOn = %q", sr.AuthoredOn)
	}
}
