package labresults

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, patient_id, language, data, reviewed_at, reviewed_by, created_at, updated_at`

func scan(row pgx.Row) (*LabResult, error) {
	var r LabResult
	var data []byte
	err := row.Scan(&r.ID, &r.PatientID, &r.Language, &data,
		&r.ReviewedAt, &r.ReviewedBy, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &r.Data); err != nil {
		return nil, fmt.Errorf("decode stored lab result data: %w", err)
	}
	return &r, nil
}

func (rp *repoPG) Create(ctx context.Context, r *LabResult) error {
	r.ID = uuid.New()
	data, err := json.Marshal(r.Data)
	if err != nil {
		return err
	}
	return rp.pool.QueryRow(ctx, `
		INSERT INTO lab_result (id, patient_id, language, data)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		r.ID, r.PatientID, r.Language, data).
		Scan(&r.CreatedAt, &r.UpdatedAt)
}

func (rp *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*LabResult, error) {
	return scan(rp.pool.QueryRow(ctx, `SELECT `+cols+` FROM lab_result WHERE id = $1`, id))
}

func (rp *repoPG) Update(ctx context.Context, r *LabResult) error {
	data, err := json.Marshal(r.Data)
	if err != nil {
		return err
	}
	tag, err := rp.pool.Exec(ctx, `
		UPDATE lab_result SET data = $2, reviewed_at = $3, reviewed_by = $4, updated_at = now()
		WHERE id = $1`,
		r.ID, data, r.ReviewedAt, r.ReviewedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (rp *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := rp.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lab_result WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := rp.pool.Query(ctx, `SELECT `+cols+` FROM lab_result
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	results, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (rp *repoPG) ListReviewedByPatient(ctx context.Context, patientID uuid.UUID) ([]*LabResult, error) {
	rows, err := rp.pool.Query(ctx, `SELECT `+cols+` FROM lab_result
		WHERE patient_id = $1 AND reviewed_at IS NOT NULL
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*LabResult, error) {
	var results []*LabResult
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
