package imaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediscribe/mediscribe/internal/platform/audit"
	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// ErrAlreadyReviewed is returned when reviewing a finding a second time.
var ErrAlreadyReviewed = errors.New("finding is already reviewed")

type Service struct {
	repo  Repository
	audit audit.Recorder
	log   zerolog.Logger
}

func NewService(repo Repository, rec audit.Recorder, log zerolog.Logger) *Service {
	return &Service{repo: repo, audit: rec, log: log}
}

// Ingest validates raw model output and persists the accepted finding. A
// rejected summary is never stored.
func (s *Service) Ingest(ctx context.Context, patientID uuid.UUID, raw []byte, lang safety.Language) (*ImagingFinding, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	data, err := DecodeAndValidate(raw, lang)
	if err != nil {
		s.log.Warn().Err(err).Str("patient_id", patientID.String()).Msg("imaging findings rejected")
		return nil, err
	}
	finding := &ImagingFinding{
		PatientID: patientID,
		Language:  lang,
		Data:      *data,
	}
	if err := s.repo.Create(ctx, finding); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, finding.ID, audit.ActionValidated, "", "")
	return finding, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ImagingFinding, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*ImagingFinding, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// Review stamps the finding as clinician-reviewed, releasing it for export.
func (s *Service) Review(ctx context.Context, id uuid.UUID, actorID, actorName string) (*ImagingFinding, error) {
	finding, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if finding.ReviewedAt != nil {
		return nil, ErrAlreadyReviewed
	}
	now := time.Now().UTC()
	finding.ReviewedAt = &now
	finding.ReviewedBy = actorID
	if err := s.repo.Update(ctx, finding); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, finding.ID, audit.ActionReviewed, actorID, actorName)
	return finding, nil
}

func (s *Service) recordAudit(ctx context.Context, id uuid.UUID, action, actorID, actorName string) {
	_ = s.audit.Record(ctx, audit.Event{
		RecordType: "imaging_finding",
		RecordID:   id,
		Action:     action,
		Outcome:    audit.OutcomeSuccess,
		ActorID:    actorID,
		ActorName:  actorName,
	})
}
