package soapnote

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

const cols = `id, patient_id, language, data, status, reviewed_at, reviewed_by,
	signed_at, signed_by, created_at, updated_at`

func scan(row pgx.Row) (*SOAPNote, error) {
	var n SOAPNote
	var data []byte
	err := row.Scan(&n.ID, &n.PatientID, &n.Language, &data, &n.Status,
		&n.ReviewedAt, &n.ReviewedBy, &n.SignedAt, &n.SignedBy,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &n.Data); err != nil {
		return nil, fmt.Errorf("decode stored note data: %w", err)
	}
	return &n, nil
}

func (r *repoPG) Create(ctx context.Context, n *SOAPNote) error {
	n.ID = uuid.New()
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO soap_note (id, patient_id, language, data, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		n.ID, n.PatientID, n.Language, data, n.Status).
		Scan(&n.CreatedAt, &n.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*SOAPNote, error) {
	return scan(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM soap_note WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, n *SOAPNote) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE soap_note SET data = $2, status = $3, reviewed_at = $4, reviewed_by = $5,
			signed_at = $6, signed_by = $7, updated_at = now()
		WHERE id = $1`,
		n.ID, data, n.Status, n.ReviewedAt, n.ReviewedBy, n.SignedAt, n.SignedBy)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*SOAPNote, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM soap_note WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM soap_note
		WHERE patient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	notes, err := collect(rows)
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

func (r *repoPG) ListReviewedByPatient(ctx context.Context, patientID uuid.UUID) ([]*SOAPNote, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM soap_note
		WHERE patient_id = $1 AND status IN ('reviewed', 'signed')
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]*SOAPNote, error) {
	var notes []*SOAPNote
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
