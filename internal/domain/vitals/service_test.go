package vitals

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type memRepo struct {
	records map[uuid.UUID]*Record
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[uuid.UUID]*Record{}}
}

func (m *memRepo) Create(_ context.Context, r *Record) error {
	r.ID = uuid.New()
	m.records[r.ID] = r
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, context.Canceled
	}
	return r, nil
}

func (m *memRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*Record, int, error) {
	var out []*Record
	for _, r := range m.records {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out, len(out), nil
}

func TestServiceCreate(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	hr := 72
	r := &Record{PatientID: uuid.New(), VitalSigns: VitalSigns{HeartRate: &hr}}
	if err := svc.Create(ctx, r); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if r.TakenAt.IsZero() {
		t.Error("expected taken_at to default to now")
	}
}

func TestServiceCreateRejectsEmpty(t *testing.T) {
	svc := NewService(newMemRepo())
	r := &Record{PatientID: uuid.New()}
	if err := svc.Create(context.Background(), r); err == nil {
		t.Error("expected error for record without measurements")
	}
}

func TestServiceCreateRejectsMissingPatient(t *testing.T) {
	svc := NewService(newMemRepo())
	hr := 72
	r := &Record{VitalSigns: VitalSigns{HeartRate: &hr}}
	if err := svc.Create(context.Background(), r); err == nil {
		t.Error("expected error for record without patient_id")
	}
}

func TestServiceCreateRejectsImplausible(t *testing.T) {
	svc := NewService(newMemRepo())
	hr := 900
	r := &Record{PatientID: uuid.New(), VitalSigns: VitalSigns{HeartRate: &hr}}
	if err := svc.Create(context.Background(), r); err == nil {
		t.Error("expected error for implausible heart rate")
	}
}
