// Package imaging holds the AI-extracted imaging findings document type.
// Summaries describe visible image features only; the safety validator
// rejects anything that reads as an interpretation, and the mapper produces
// a DiagnosticReport whose narrative carries the limitations disclaimer
// verbatim.
package imaging

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// ImagingFindingsSummary is the typed document decoded from model output.
// AnatomicalObservations groups plain descriptive statements by body region.
type ImagingFindingsSummary struct {
	ImageType              string              `json:"image_type"`
	AnatomicalObservations map[string][]string `json:"anatomical_observations"`
	QualityAssessment      string              `json:"quality_assessment,omitempty"`
	Limitations            string              `json:"limitations"`
}

// ImagingFinding maps to the imaging_finding table. Review state is a
// timestamp rather than a status enum: a finding is either unreviewed or
// reviewed, there is no signature step.
type ImagingFinding struct {
	ID         uuid.UUID              `db:"id" json:"id"`
	PatientID  uuid.UUID              `db:"patient_id" json:"patient_id"`
	Language   safety.Language        `db:"language" json:"language"`
	Data       ImagingFindingsSummary `db:"data" json:"data"`
	ReviewedAt *time.Time             `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy string                 `db:"reviewed_by" json:"reviewed_by,omitempty"`
	CreatedAt  time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time              `db:"updated_at" json:"updated_at"`
}

func (f *ImagingFinding) ExportReady() bool {
	return f.ReviewedAt != nil
}
