// Package labresults holds the AI-extracted lab results document type. A
// summary restates reported test values without interpreting them; each
// accepted test maps to an Observation coded with the registered LOINC
// analyte code where one exists.
package labresults

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// LabTest is one reported test row transcribed from a lab report.
type LabTest struct {
	TestName       string `json:"test_name"`
	Value          string `json:"value"`
	Unit           string `json:"unit,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
	Flag           string `json:"flag,omitempty"`
}

// LabResultsSummary is the typed document decoded from model output.
type LabResultsSummary struct {
	Tests       []LabTest `json:"tests"`
	Limitations string    `json:"limitations"`
}

// LabResult maps to the lab_result table. Review state is a timestamp, as
// for imaging findings.
type LabResult struct {
	ID         uuid.UUID         `db:"id" json:"id"`
	PatientID  uuid.UUID         `db:"patient_id" json:"patient_id"`
	Language   safety.Language   `db:"language" json:"language"`
	Data       LabResultsSummary `db:"data" json:"data"`
	ReviewedAt *time.Time        `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy string            `db:"reviewed_by" json:"reviewed_by,omitempty"`
	CreatedAt  time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `db:"updated_at" json:"updated_at"`
}

func (r *LabResult) ExportReady() bool {
	return r.ReviewedAt != nil
}
