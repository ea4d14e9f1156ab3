package referral

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *Referral) error
	GetByID(ctx context.Context, id uuid.UUID) (*Referral, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Referral, int, error)
}
