package soapnote

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediscribe/mediscribe/internal/platform/audit"
	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// TransitionError reports an illegal review-workflow transition. Status moves
// only forward: unvalidated → validated → reviewed → signed.
type TransitionError struct {
	From ValidationStatus
	To   ValidationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s → %s", e.From, e.To)
}

type Service struct {
	repo  Repository
	audit audit.Recorder
	log   zerolog.Logger
}

func NewService(repo Repository, rec audit.Recorder, log zerolog.Logger) *Service {
	return &Service{repo: repo, audit: rec, log: log}
}

// Ingest validates raw model output and persists the accepted note. A note
// that fails validation is never stored; the typed validation error is
// returned to the caller, who may regenerate and resubmit.
func (s *Service) Ingest(ctx context.Context, patientID uuid.UUID, raw []byte, lang safety.Language) (*SOAPNote, error) {
	if patientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	data, err := DecodeAndValidate(raw, lang)
	if err != nil {
		s.log.Warn().Err(err).Str("patient_id", patientID.String()).Msg("note rejected")
		return nil, err
	}
	note := &SOAPNote{
		PatientID: patientID,
		Language:  lang,
		Data:      *data,
		Status:    StatusValidated,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, note.ID, audit.ActionValidated, "", "")
	return note, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*SOAPNote, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*SOAPNote, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}

// Review marks a validated note as clinician-reviewed.
func (s *Service) Review(ctx context.Context, id uuid.UUID, actorID, actorName string) (*SOAPNote, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if statusRank[note.Status] >= statusRank[StatusReviewed] {
		return nil, &TransitionError{From: note.Status, To: StatusReviewed}
	}
	now := time.Now().UTC()
	note.Status = StatusReviewed
	note.ReviewedAt = &now
	note.ReviewedBy = actorID
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, note.ID, audit.ActionReviewed, actorID, actorName)
	return note, nil
}

// Sign marks a reviewed note as signed. Signing an unreviewed note is an
// illegal transition; review cannot be skipped.
func (s *Service) Sign(ctx context.Context, id uuid.UUID, actorID, actorName string) (*SOAPNote, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note.Status != StatusReviewed {
		return nil, &TransitionError{From: note.Status, To: StatusSigned}
	}
	now := time.Now().UTC()
	note.Status = StatusSigned
	note.SignedAt = &now
	note.SignedBy = actorID
	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}
	s.recordAudit(ctx, note.ID, audit.ActionSigned, actorID, actorName)
	return note, nil
}

func (s *Service) recordAudit(ctx context.Context, noteID uuid.UUID, action, actorID, actorName string) {
	_ = s.audit.Record(ctx, audit.Event{
		RecordType: "soap_note",
		RecordID:   noteID,
		Action:     action,
		Outcome:    audit.OutcomeSuccess,
		ActorID:    actorID,
		ActorName:  actorName,
	})
}
