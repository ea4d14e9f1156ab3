package export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediscribe/mediscribe/internal/domain/imaging"
	"github.com/mediscribe/mediscribe/internal/domain/labresults"
	"github.com/mediscribe/mediscribe/internal/domain/soapnote"
	"github.com/mediscribe/mediscribe/internal/platform/audit"
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
)

// Service builds export bundles. Every entry point applies the gate before
// mapping, validates the encoded bundle, and leaves an audit record for both
// allowed and blocked attempts.
type Service struct {
	notes    soapnote.Repository
	imaging  imaging.Repository
	labs     labresults.Repository
	identity Identity

	validator *fhir.Validator
	newID     fhir.IDFunc
	now       func() time.Time
	audit     audit.Recorder
	log       zerolog.Logger
}

func NewService(notes soapnote.Repository, im imaging.Repository, labs labresults.Repository,
	identity Identity, rec audit.Recorder, log zerolog.Logger) *Service {
	return &Service{
		notes:     notes,
		imaging:   im,
		labs:      labs,
		identity:  identity,
		validator: fhir.NewValidator(),
		newID:     fhir.UUIDSource(),
		now:       func() time.Time { return time.Now().UTC() },
		audit:     rec,
		log:       log,
	}
}

// ExportNote produces a collection bundle for one reviewed or signed note.
func (s *Service) ExportNote(ctx context.Context, id uuid.UUID) ([]byte, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AssertExportable(note); err != nil {
		s.recordBlocked(ctx, "soap_note", id, err)
		return nil, err
	}

	now := s.now()
	ir := buildIdentity(note.PatientID.String(), s.identity, s.newID)
	result := soapnote.Map(note, soapnote.Refs{
		Patient:      ir.PatientRef,
		Practitioner: ir.PractitionerRef,
		Organization: ir.OrganizationRef,
	}, s.newID, now)

	entries := []fhir.BundleEntry{{FullURL: fhir.URNReference(result.Composition.ID), Resource: result.Composition}}
	res, ids := result.Resources()
	for i, r := range res {
		entries = append(entries, fhir.BundleEntry{FullURL: fhir.URNReference(ids[i]), Resource: r})
	}
	entries = append(entries, ir.entries()...)

	return s.encode(ctx, "soap_note", id, fhir.NewCollectionBundle(s.newID(), entries, now))
}

// ExportImaging produces a collection bundle for one reviewed imaging
// finding.
func (s *Service) ExportImaging(ctx context.Context, id uuid.UUID) ([]byte, error) {
	finding, err := s.imaging.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AssertExportable(finding); err != nil {
		s.recordBlocked(ctx, "imaging_finding", id, err)
		return nil, err
	}

	now := s.now()
	ir := buildIdentity(finding.PatientID.String(), s.identity, s.newID)
	result := imaging.Map(finding, imaging.Refs{
		Patient:      ir.PatientRef,
		Practitioner: ir.PractitionerRef,
	}, s.newID, now)

	var entries []fhir.BundleEntry
	res, ids := result.Resources()
	for i, r := range res {
		entries = append(entries, fhir.BundleEntry{FullURL: fhir.URNReference(ids[i]), Resource: r})
	}
	entries = append(entries, ir.entries()...)

	return s.encode(ctx, "imaging_finding", id, fhir.NewCollectionBundle(s.newID(), entries, now))
}

// ExportLabResult produces a collection bundle for one reviewed lab summary.
func (s *Service) ExportLabResult(ctx context.Context, id uuid.UUID) ([]byte, error) {
	result, err := s.labs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := AssertExportable(result); err != nil {
		s.recordBlocked(ctx, "lab_result", id, err)
		return nil, err
	}

	now := s.now()
	ir := buildIdentity(result.PatientID.String(), s.identity, s.newID)
	mapped := labresults.Map(result, labresults.Refs{
		Patient:      ir.PatientRef,
		Practitioner: ir.PractitionerRef,
	}, s.newID, now)

	var entries []fhir.BundleEntry
	res, ids := mapped.Resources()
	for i, r := range res {
		entries = append(entries, fhir.BundleEntry{FullURL: fhir.URNReference(ids[i]), Resource: r})
	}
	entries = append(entries, ir.entries()...)

	return s.encode(ctx, "lab_result", id, fhir.NewCollectionBundle(s.newID(), entries, now))
}

func (s *Service) encode(ctx context.Context, recordType string, id uuid.UUID, bundle *fhir.Bundle) ([]byte, error) {
	data, err := Encode(bundle, s.validator)
	if err != nil {
		s.log.Error().Err(err).Str("record_type", recordType).Msg("bundle encoding failed")
		return nil, err
	}
	_ = s.audit.Record(ctx, audit.Event{
		RecordType: recordType,
		RecordID:   id,
		Action:     audit.ActionExported,
		Outcome:    audit.OutcomeSuccess,
	})
	return data, nil
}

func (s *Service) recordBlocked(ctx context.Context, recordType string, id uuid.UUID, err error) {
	s.log.Warn().Err(err).Str("record_type", recordType).Str("record_id", id.String()).Msg("export blocked")
	_ = s.audit.Record(ctx, audit.Event{
		RecordType: recordType,
		RecordID:   id,
		Action:     audit.ActionExportBlocked,
		Outcome:    audit.OutcomeBlocked,
		Detail:     err.Error(),
	})
}
