// Package audit records review, signature, and export decisions so that
// every transition of clinical content toward export leaves a trace,
// including refused exports.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Actions recorded by the service layer.
const (
	ActionValidated     = "validated"
	ActionReviewed      = "reviewed"
	ActionSigned        = "signed"
	ActionExported      = "exported"
	ActionExportBlocked = "export-blocked"
)

// Outcomes use the FHIR AuditEvent outcome codes: 0 success, 8 serious
// failure.
const (
	OutcomeSuccess = "0"
	OutcomeBlocked = "8"
)

// Event is one audit trail entry.
type Event struct {
	ID         uuid.UUID `json:"id"`
	RecordType string    `json:"record_type"` // soap_note, imaging_finding, lab_result, ips_bundle
	RecordID   uuid.UUID `json:"record_id"`
	Action     string    `json:"action"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	ActorName  string    `json:"actor_name,omitempty"`
	Recorded   time.Time `json:"recorded"`
}

// Recorder persists audit events. Recording is best-effort from the caller's
// point of view: a failed write is logged, never allowed to fail the
// clinical operation itself.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// PGRecorder writes events to the export_audit table.
type PGRecorder struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewPGRecorder(pool *pgxpool.Pool, log zerolog.Logger) *PGRecorder {
	return &PGRecorder{pool: pool, log: log}
}

func (r *PGRecorder) Record(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Recorded.IsZero() {
		event.Recorded = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO export_audit (id, record_type, record_id, action, outcome, detail, actor_id, actor_name, recorded)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		event.ID, event.RecordType, event.RecordID, event.Action, event.Outcome,
		event.Detail, event.ActorID, event.ActorName, event.Recorded)
	if err != nil {
		r.log.Error().Err(err).
			Str("record_type", event.RecordType).
			Str("action", event.Action).
			Msg("audit write failed")
	}
	return err
}

// Nop discards events; used in tests and when no database is configured.
type Nop struct{}

func (Nop) Record(ctx context.Context, event Event) error { return nil }
