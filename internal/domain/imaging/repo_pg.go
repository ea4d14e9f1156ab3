package imaging

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

func scan(row pgx.Row) (*ImagingFinding, error) {
	var f ImagingFinding
	var data []byte
	err := row.Scan(&f.ID, &f.PatientID, &f.Language, &data,
		&f.ReviewedAt, &f.ReviewedBy, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &f.Data); err != nil {
		return nil, fmt.Errorf("decode stored finding data: %w", err)
	}
	return &f, nil
}

func (r *repoPG) Create(ctx context.Context, f *ImagingFinding) error {
	f.ID = uuid.New()
	data, err := json.Marshal(f.Data)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO imaging_finding (id, patient_id, language, data)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		f.ID, f.PatientID, f.Language, data).
		Scan(&f.CreatedAt, &f.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*ImagingFinding, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM imaging_finding WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, f *ImagingFinding) error {
	data, err := json.Marshal(f.Data)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE imaging_finding SET data = $2, reviewed_at = $3, reviewed_by = $4, updated_at = now()
		WHERE id = $1`,
		f.ID, data, f.ReviewedAt, f.ReviewedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*ImagingFinding, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM imaging_finding WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM imaging_finding
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	findings, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return findings, total, nil
}

func (r *repoPG) ListReviewedByPatient(ctx context.Context, patientID uuid.UUID) ([]*ImagingFinding, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM imaging_finding
		WHERE patient_id = $1 AND reviewed_at IS NOT NULL
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*ImagingFinding, error) {
	var findings []*ImagingFinding
	for rows.Next() {
		f, err := scan(rows)
		if err != nil {
			return nil, err
		}
		findings = append(findings, f)
	}
	return findings, rows.Err()
}
