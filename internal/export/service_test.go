package export

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediscribe/mediscribe/internal/domain/imaging"
	"github.com/mediscribe/mediscribe/internal/domain/labresults"
	"github.com/mediscribe/mediscribe/internal/domain/soapnote"
	"github.com/mediscribe/mediscribe/internal/platform/audit"
	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

// --- in-memory repositories ---

type noteRepo struct{ notes map[uuid.UUID]*soapnote.SOAPNote }

func (m *noteRepo) Create(_ context.Context, n *soapnote.SOAPNote) error {
	n.ID = uuid.New()
	m.notes[n.ID] = n
	return nil
}
func (m *noteRepo) GetByID(_ context.Context, id uuid.UUID) (*soapnote.SOAPNote, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return n, nil
}
func (m *noteRepo) Update(_ context.Context, n *soapnote.SOAPNote) error {
	m.notes[n.ID] = n
	return nil
}
func (m *noteRepo) ListByPatient(_ context.Context, pid uuid.UUID, limit, offset int) ([]*soapnote.SOAPNote, int, error) {
	return nil, 0, nil
}
func (m *noteRepo) ListReviewedByPatient(_ context.Context, pid uuid.UUID) ([]*soapnote.SOAPNote, error) {
	var out []*soapnote.SOAPNote
	for _, n := range m.notes {
		if n.PatientID == pid && n.ExportReady() {
			out = append(out, n)
		}
	}
	return out, nil
}

type imagingRepo struct{ findings map[uuid.UUID]*imaging.ImagingFinding }

func (m *imagingRepo) Create(_ context.Context, f *imaging.ImagingFinding) error {
	f.ID = uuid.New()
	m.findings[f.ID] = f
	return nil
}
func (m *imagingRepo) GetByID(_ context.Context, id uuid.UUID) (*imaging.ImagingFinding, error) {
	f, ok := m.findings[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return f, nil
}
func (m *imagingRepo) Update(_ context.Context, f *imaging.ImagingFinding) error {
	m.findings[f.ID] = f
	return nil
}
func (m *imagingRepo) ListByPatient(_ context.Context, pid uuid.UUID, limit, offset int) ([]*imaging.ImagingFinding, int, error) {
	return nil, 0, nil
}
func (m *imagingRepo) ListReviewedByPatient(_ context.Context, pid uuid.UUID) ([]*imaging.ImagingFinding, error) {
	var out []*imaging.ImagingFinding
	for _, f := range m.findings {
		if f.PatientID == pid && f.ExportReady() {
			out = append(out, f)
		}
	}
	return out, nil
}

type labRepo struct{ results map[uuid.UUID]*labresults.LabResult }

func (m *labRepo) Create(_ context.Context, r *labresults.LabResult) error {
	r.ID = uuid.New()
	m.results[r.ID] = r
	return nil
}
func (m *labRepo) GetByID(_ context.Context, id uuid.UUID) (*labresults.LabResult, error) {
	r, ok := m.results[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}
func (m *labRepo) Update(_ context.Context, r *labresults.LabResult) error {
	m.results[r.ID] = r
	return nil
}
func (m *labRepo) ListByPatient(_ context.Context, pid uuid.UUID, limit, offset int) ([]*labresults.LabResult, int, error) {
	return nil, 0, nil
}
func (m *labRepo) ListReviewedByPatient(_ context.Context, pid uuid.UUID) ([]*labresults.LabResult, error) {
	var out []*labresults.LabResult
	for _, r := range m.results {
		if r.PatientID == pid && r.ExportReady() {
			out = append(out, r)
		}
	}
	return out, nil
}

type recordingAudit struct{ events []audit.Event }

func (r *recordingAudit) Record(_ context.Context, e audit.Event) error {
	r.events = append(r.events, e)
	return nil
}

// --- fixtures ---

const noteDisclaimer = "This draft note was generated from dictation and must be verified by a licensed clinician before clinical use."
const labLimitations = "This summary restates the reported test values only and does not interpret results or provide a diagnosis."

type fixture struct {
	svc     *Service
	notes   *noteRepo
	imaging *imagingRepo
	labs    *labRepo
	audit   *recordingAudit
}

func newFixture() *fixture {
	f := &fixture{
		notes:   &noteRepo{notes: map[uuid.UUID]*soapnote.SOAPNote{}},
		imaging: &imagingRepo{findings: map[uuid.UUID]*imaging.ImagingFinding{}},
		labs:    &labRepo{results: map[uuid.UUID]*labresults.LabResult{}},
		audit:   &recordingAudit{},
	}
	identity := Identity{
		ClinicianID:   "clin-1",
		ClinicianName: "Dr. Rivera",
		FacilityID:    "fac-1",
		FacilityName:  "Riverside Clinic",
	}
	f.svc = NewService(f.notes, f.imaging, f.labs, identity, f.audit, zerolog.Nop())
	return f
}

func (f *fixture) addNote(patientID uuid.UUID, status soapnote.ValidationStatus) *soapnote.SOAPNote {
	n := &soapnote.SOAPNote{
		PatientID: patientID,
		Language:  safety.LanguageEnglish,
		Data: soapnote.SOAPNoteData{
			ChiefComplaint: "Cough",
			Subjective:     "Patient reports a dry cough.",
			Disclaimer:     noteDisclaimer,
		},
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if status == soapnote.StatusReviewed || status == soapnote.StatusSigned {
		at := time.Now().UTC()
		n.ReviewedAt = &at
		n.ReviewedBy = "clin-1"
	}
	_ = f.notes.Create(context.Background(), n)
	return n
}

func (f *fixture) addLab(patientID uuid.UUID, reviewed bool) *labresults.LabResult {
	r := &labresults.LabResult{
		PatientID: patientID,
		Language:  safety.LanguageEnglish,
		Data: labresults.LabResultsSummary{
			Tests:       []labresults.LabTest{{TestName: "hemoglobin", Value: "13.5", Unit: "g/dL"}},
			Limitations: labLimitations,
		},
		CreatedAt: time.Now().UTC(),
	}
	if reviewed {
		at := time.Now().UTC()
		r.ReviewedAt = &at
	}
	_ = f.labs.Create(context.Background(), r)
	return r
}

// --- tests ---

func TestExportNoteBlockedBeforeReview(t *testing.T) {
	f := newFixture()
	note := f.addNote(uuid.New(), soapnote.StatusValidated)

	_, err := f.svc.ExportNote(context.Background(), note.ID)
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("err = %v, want BlockedError", err)
	}

	found := false
	for _, e := range f.audit.events {
		if e.Action == audit.ActionExportBlocked && e.RecordID == note.ID {
			found = true
			if e.Outcome != audit.OutcomeBlocked {
				t.Errorf("outcome = %q", e.Outcome)
			}
		}
	}
	if !found {
		t.Error("blocked export must leave an audit record")
	}
}

func TestExportNoteAfterReview(t *testing.T) {
	f := newFixture()
	note := f.addNote(uuid.New(), soapnote.StatusReviewed)

	data, err := f.svc.ExportNote(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("ExportNote: %v", err)
	}

	var bundle map[string]any
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatalf("exported bundle is not valid JSON: %v", err)
	}
	if bundle["type"] != "collection" {
		t.Errorf("bundle type = %v, want collection", bundle["type"])
	}
	if !strings.Contains(string(data), noteDisclaimer) {
		t.Error("disclaimer must survive into the exported bundle")
	}

	exported := false
	for _, e := range f.audit.events {
		if e.Action == audit.ActionExported && e.RecordID == note.ID {
			exported = true
		}
	}
	if !exported {
		t.Error("successful export must leave an audit record")
	}
}

func TestExportNoteUsesSingleInstant(t *testing.T) {
	f := newFixture()
	note := f.addNote(uuid.New(), soapnote.StatusReviewed)

	tick := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time {
		// Advance on every call so any second read would be visible.
		tick = tick.Add(time.Second)
		return tick
	}

	data, err := f.svc.ExportNote(context.Background(), note.ID)
	if err != nil {
		t.Fatalf("ExportNote: %v", err)
	}

	var bundle struct {
		Timestamp string `json:"timestamp"`
		Entry     []struct {
			Resource struct {
				ResourceType string `json:"resourceType"`
				Date         string `json:"date"`
			} `json:"resource"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatal(err)
	}
	if bundle.Entry[0].Resource.ResourceType != "Composition" {
		t.Fatalf("first entry = %q, want Composition", bundle.Entry[0].Resource.ResourceType)
	}
	if bundle.Timestamp != bundle.Entry[0].Resource.Date {
		t.Errorf("bundle timestamp %q differs from composition date %q",
			bundle.Timestamp, bundle.Entry[0].Resource.Date)
	}
}

func TestExportLabResult(t *testing.T) {
	f := newFixture()
	lab := f.addLab(uuid.New(), true)

	data, err := f.svc.ExportLabResult(context.Background(), lab.ID)
	if err != nil {
		t.Fatalf("ExportLabResult: %v", err)
	}
	if !strings.Contains(string(data), `"718-7"`) {
		t.Error("exported bundle must carry the hemoglobin LOINC code")
	}
	if !strings.Contains(string(data), `"preliminary"`) {
		t.Error("reviewed lab report must export as preliminary")
	}
}

func TestExportSummaryBlockedWithoutReviewedContent(t *testing.T) {
	f := newFixture()
	patientID := uuid.New()
	f.addNote(patientID, soapnote.StatusValidated)
	f.addLab(patientID, false)

	_, err := f.svc.ExportPatientSummary(context.Background(), patientID)
	var blocked *BlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("err = %v, want BlockedError", err)
	}
}

func TestExportSummaryExcludesUnreviewed(t *testing.T) {
	f := newFixture()
	patientID := uuid.New()
	f.addLab(patientID, true)
	f.addNote(patientID, soapnote.StatusValidated) // must not appear

	data, err := f.svc.ExportPatientSummary(context.Background(), patientID)
	if err != nil {
		t.Fatalf("ExportPatientSummary: %v", err)
	}

	var bundle struct {
		Type  string `json:"type"`
		Entry []struct {
			Resource struct {
				ResourceType string `json:"resourceType"`
				Section      []struct {
					Title       string           `json:"title"`
					Entry       []map[string]any `json:"entry"`
					EmptyReason map[string]any   `json:"emptyReason"`
				} `json:"section"`
			} `json:"resource"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatal(err)
	}
	if bundle.Type != "document" {
		t.Errorf("bundle type = %q, want document", bundle.Type)
	}
	if bundle.Entry[0].Resource.ResourceType != "Composition" {
		t.Fatalf("first entry = %q, want Composition", bundle.Entry[0].Resource.ResourceType)
	}

	sections := bundle.Entry[0].Resource.Section
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	results, documents := sections[0], sections[1]
	if results.Title != "Results" || len(results.Entry) != 1 {
		t.Errorf("Results section = %+v", results)
	}
	// The unreviewed note is silently excluded, so the Clinical Documents
	// section is empty and must carry a structured emptyReason.
	if documents.Title != "Clinical Documents" || len(documents.Entry) != 0 {
		t.Errorf("Clinical Documents section = %+v", documents)
	}
	if documents.EmptyReason == nil {
		t.Error("empty section must carry emptyReason, not be omitted")
	}

	if strings.Contains(string(data), `"Progress note"`) {
		t.Error("unreviewed note content leaked into the summary")
	}
}

func TestExportSummaryIncludesReviewedNote(t *testing.T) {
	f := newFixture()
	patientID := uuid.New()
	f.addNote(patientID, soapnote.StatusSigned)

	data, err := f.svc.ExportPatientSummary(context.Background(), patientID)
	if err != nil {
		t.Fatalf("ExportPatientSummary: %v", err)
	}
	if !strings.Contains(string(data), `"Progress note"`) {
		t.Error("signed note must appear in the summary")
	}
	// De-identified patient: identifier only, no name on the Patient
	// resource.
	if strings.Contains(string(data), `"official"`) && strings.Contains(string(data), `"Patient"`) {
		var bundle struct {
			Entry []struct {
				Resource map[string]any `json:"resource"`
			} `json:"entry"`
		}
		_ = json.Unmarshal(data, &bundle)
		for _, e := range bundle.Entry {
			if e.Resource["resourceType"] == "Patient" {
				if _, ok := e.Resource["name"]; ok {
					t.Error("de-identified Patient must not carry a name")
				}
			}
		}
	}
}
