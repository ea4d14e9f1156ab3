package labresults

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

// ErrAlreadyReviewed is returned when reviewing a result a second time.
var ErrAlreadyReviewed = errors.New("lab result is already reviewed")

type Service struct {
	repo  Repository
	audit audit.Recorder
	log   zerolog.Logger
}

func NewService(repo Repository, rec audit.Recorder, log zerolog.Logger) *Service {
	return &Service{repo: repo, audit: rec, log: log}
}

func (s *Service) Ingest(ctx context.Context, patientID uuid.UUID, raw []byte, lang safety.Language) (*LabResult, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	data, err := DecodeAndValidate(raw, lang)
	if err != nil {
		s.log.Warn().Err(err).Str("patient_id", patientID.String()).Msg("lab results rejected")
		return nil, err
	}
	result := &LabResult{
		PatientID: patientID,
		Language:  lang,
		Data:      *data,
	}
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, result.ID, audit.ActionValidated, "", "")
	return result, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) Review(ctx context.Context, id uuid.UUID, actorID, actorName string) (*LabResult, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.ReviewedAt != nil {
		return nil, ErrAlreadyReviewed
	}
	now := time.Now().UTC()
	result.ReviewedAt = &now
	result.ReviewedBy = actorID
	if err := s.repo.Update(ctx, result); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, result.ID, audit.ActionReviewed, actorID, actorName)
	return result, nil
}

func (s *Service) recordAudit(ctx context.Context, id uuid.UUID, action, actorID, actorName string) {
	_ = s.audit.Record(ctx, audit.Event{
		RecordType: "lab_result",
		RecordID:   id,
		Action:     action,
		Outcome:    audit.OutcomeSuccess,
		ActorID:    actorID,
		ActorName:  actorName,
	})
}
