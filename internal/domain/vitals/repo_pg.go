package vitals

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

const cols = `id, patient_id, taken_at, temperature_c, heart_rate,
	respiratory_rate, systolic_bp, diastolic_bp, spo2, created_at`

func scan(row pgx.Row) (*Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.PatientID, &r.TakenAt, &r.TemperatureC, &r.HeartRate,
		&r.RespiratoryRate, &r.SystolicBP, &r.DiastolicBP, &r.SpO2, &r.CreatedAt)
	return &r, err
}

func (rp *repoPG) Create(ctx context.Context, r *Record) error {
	r.ID = uuid.New()
	_, err := rp.pool.Exec(ctx, `
		INSERT INTO vitals_record (id, patient_id, taken_at, temperature_c, heart_rate,
			respiratory_rate, systolic_bp, diastolic_bp, spo2)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.PatientID, r.TakenAt, r.TemperatureC, r.HeartRate,
		r.RespiratoryRate, r.SystolicBP, r.DiastolicBP, r.SpO2)
	return err
}

func (rp *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	return scan(rp.pool.QueryRow(ctx, `SELECT `+cols+` FROM vitals_record WHERE id = $1`, id))
}

func (rp *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := rp.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM vitals_record WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := rp.pool.Query(ctx, `SELECT `+cols+` FROM vitals_record
		WHERE patient_id = $1 ORDER BY taken_at DESC LIMIT $2 OFFSET $3`, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, r)
	}
	return records, total, rows.Err()
}
