package referral

import (
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

// Refs carries the identity references a mapped request points at.
type Refs struct {
	Patient      fhir.Reference
	Practitioner fhir.Reference
}

// Map converts a referral into a ServiceRequest. The requesting clinician is
// the requester; there is no Provenance because the content is
// human-authored.
func Map(r *Referral, refs Refs, newID fhir.IDFunc) *fhir.ServiceRequest {
	sr := &fhir.ServiceRequest{
		ResourceType: "ServiceRequest",
		ID:           newID(),
		Status:       r.Status,
		Intent:       fhirmodels.ServiceRequestIntentOrder,
		Priority:     r.Priority,
		Code:         &fhir.CodeableConcept{Text: "Referral to " + r.Specialty},
		Subject:      refs.Patient,
		AuthoredOn:   fhir.FormatInstant(r.CreatedAt),
		Requester:    &refs.Practitioner,
	}
	if r.Reason != "" {
		sr.ReasonCode = []fhir.CodeableConcept{{Text: r.Reason}}
	}
	if r.Notes != "" {
		sr.Note = []fhir.Annotation{{Text: r.Notes}}
	}
	return sr
}
