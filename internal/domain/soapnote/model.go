// Package soapnote holds the AI-drafted SOAP note document type: schema and
// safety validation of raw model output, the review/sign workflow, and the
// FHIR mapping to Composition, ClinicalImpression, MedicationStatement,
// AllergyIntolerance, and Provenance.
package soapnote

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/internal/domain/vitals"
	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// Medication is one medication mention transcribed from dictation. It is a
// statement of what the patient reports taking, never a prescription.
type Medication struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage,omitempty"`
}

// SOAPNoteData is the typed document decoded from raw model output. Field
// names follow the snake_case generation schema. The struct is treated as
// immutable once DecodeAndValidate has accepted it.
type SOAPNoteData struct {
	ChiefComplaint     string              `json:"chief_complaint"`
	Subjective         string              `json:"subjective"`
	Objective          string              `json:"objective"`
	ClinicalImpression string              `json:"clinical_impression"`
	Interventions      []string            `json:"interventions,omitempty"`
	Medications        []Medication        `json:"medications,omitempty"`
	Allergies          []string            `json:"allergies,omitempty"`
	VitalSigns         *vitals.VitalSigns  `json:"vital_signs,omitempty"`
	Disclaimer         string              `json:"disclaimer"`
}

// ValidationStatus tracks a note's progress through the review workflow.
// Transitions are monotonic: unvalidated → validated → reviewed → signed.
type ValidationStatus string

const (
	StatusUnvalidated ValidationStatus = "unvalidated"
	StatusValidated   ValidationStatus = "validated"
	StatusReviewed    ValidationStatus = "reviewed"
	StatusSigned      ValidationStatus = "signed"
)

var statusRank = map[ValidationStatus]int{
	StatusUnvalidated: 0,
	StatusValidated:   1,
	StatusReviewed:    2,
	StatusSigned:      3,
}

// SOAPNote maps to the soap_note table.
type SOAPNote struct {
	ID         uuid.UUID        `db:"id" json:"id"`
	PatientID  uuid.UUID        `db:"patient_id" json:"patient_id"`
	Language   safety.Language  `db:"language" json:"language"`
	Data       SOAPNoteData     `db:"data" json:"data"`
	Status     ValidationStatus `db:"status" json:"status"`
	ReviewedAt *time.Time       `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy string           `db:"reviewed_by" json:"reviewed_by,omitempty"`
	SignedAt   *time.Time       `db:"signed_at" json:"signed_at,omitempty"`
	SignedBy   string           `db:"signed_by" json:"signed_by,omitempty"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}

// ExportReady reports whether the note has cleared clinician review. The
// export gate calls this before any FHIR mapping begins.
func (n *SOAPNote) ExportReady() bool {
	return n.Status == StatusReviewed || n.Status == StatusSigned
}
