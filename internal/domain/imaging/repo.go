package imaging

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f *ImagingFinding) error
	GetByID(ctx context.Context, id uuid.UUID) (*ImagingFinding, error)
	Update(ctx context.Context, f *ImagingFinding) error
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*ImagingFinding, int, error)
	ListReviewedByPatient(ctx context.Context, patientID uuid.UUID) ([]*ImagingFinding, error)
}
