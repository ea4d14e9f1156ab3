package referral

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

var validStatuses = map[string]bool{
	fhirmodels.ServiceRequestStatusActive:    true,
	fhirmodels.ServiceRequestStatusCompleted: true,
	fhirmodels.ServiceRequestStatusRevoked:   true,
}

var validPriorities = map[string]bool{
	fhirmodels.PriorityRoutine: true,
	fhirmodels.PriorityUrgent:  true,
	fhirmodels.PriorityASAP:    true,
	fhirmodels.PriorityStat:    true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, r *Referral) error {
	if r.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if r.Specialty == "" {
		return fmt.Errorf("specialty is required")
	}
	if r.Status == "" {
		r.Status = fhirmodels.ServiceRequestStatusActive
	}
	if !validStatuses[r.Status] {
		return fmt.Errorf("invalid status: %s", r.Status)
	}
	if r.Priority == "" {
		r.Priority = fhirmodels.PriorityRoutine
	}
	if !validPriorities[r.Priority] {
		return fmt.Errorf("invalid priority: %s", r.Priority)
	}
	return s.repo.Create(ctx, r)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Referral, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Referral, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
