package referral

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, patient_id, specialty, reason, priority, notes, status, authored_by, created_at, updated_at`

func scan(row pgx.Row) (*Referral, error) {
	var r Referral
	err := row.Scan(&r.ID, &r.PatientID, &r.Specialty, &r.Reason, &r.Priority,
		&r.Notes, &r.Status, &r.AuthoredBy, &r.CreatedAt, &r.UpdatedAt)
	return &r, err
}

func (rp *repoPG) Create(ctx context.Context, r *Referral) error {
	r.ID = uuid.New()
	return rp.pool.QueryRow(ctx, `
		INSERT INTO referral (id, patient_id, specialty, reason, priority, notes, status, authored_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		r.ID, r.PatientID, r.Specialty, r.Reason, r.Priority, r.Notes, r.Status, r.AuthoredBy).
		Scan(&r.CreatedAt, &r.UpdatedAt)
}

func (rp *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Referral, error) {
	return scan(rp.pool.QueryRow(ctx, `SELECT `+cols+` FROM referral WHERE id = $1`, id))
}

func (rp *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Referral, int, error) {
	var total int
	if err := rp.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM referral WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := rp.pool.Query(ctx, `SELECT `+cols+` FROM referral
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var referrals []*Referral
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		referrals = append(referrals, r)
	}
	return referrals, total, rows.Err()
}
