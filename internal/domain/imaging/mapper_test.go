package imaging

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

func seqIDs() fhir.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
	}
}

func testRefs() Refs {
	return Refs{
		Patient:      fhir.Reference{Reference: "Patient/p1"},
		Practitioner: fhir.Reference{Reference: "Practitioner/c1"},
	}
}

var mapperNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func testFinding(reviewed bool) *ImagingFinding {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	f := &ImagingFinding{
		ID:        uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		PatientID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Language:  safety.LanguageEnglish,
		Data: ImagingFindingsSummary{
			ImageType: "chest x-ray",
			AnatomicalObservations: map[string][]string{
				"lungs": {"Increased opacity in the lower left region"},
				"heart": {"Cardiac silhouette within described bounds"},
			},
			Limitations: englishLimitations,
		},
		CreatedAt: created,
	}
	if reviewed {
		at := created.Add(time.Hour)
		f.ReviewedAt = &at
		f.ReviewedBy = "clin-1"
	}
	return f
}

func TestMapDisclaimerVerbatimInNarrative(t *testing.T) {
	result := Map(testFinding(true), testRefs(), seqIDs(), mapperNow)
	if !strings.Contains(result.Report.Text.Div, englishLimitations) {
		t.Error("limitations text must appear verbatim in the report narrative")
	}
}

// AI-drafted imaging descriptions are never promoted past preliminary;
// review releases them for export without upgrading the report status.
func TestMapReportStaysPreliminary(t *testing.T) {
	for _, reviewed := range []bool{false, true} {
		result := Map(testFinding(reviewed), testRefs(), seqIDs(), mapperNow)
		if result.Report.Status != "preliminary" {
			t.Errorf("reviewed=%v: status = %q, want preliminary", reviewed, result.Report.Status)
		}
	}
}

func TestMapObservationsSortedByRegion(t *testing.T) {
	result := Map(testFinding(true), testRefs(), seqIDs(), mapperNow)
	if len(result.Observations) != 2 {
		t.Fatalf("len(Observations) = %d", len(result.Observations))
	}
	// "heart" sorts before "lungs".
	if result.Observations[0].Code.Text != "heart" || result.Observations[1].Code.Text != "lungs" {
		t.Errorf("regions = %q, %q", result.Observations[0].Code.Text, result.Observations[1].Code.Text)
	}
	if got := result.Observations[0].Category[0].Coding[0].Code; got != "imaging" {
		t.Errorf("category = %q", got)
	}
}

func TestMapReportShape(t *testing.T) {
	result := Map(testFinding(true), testRefs(), seqIDs(), mapperNow)
	r := result.Report
	if r.Category[0].Coding[0].Code != "RAD" {
		t.Errorf("category = %q, want RAD", r.Category[0].Coding[0].Code)
	}
	if r.Code.Coding[0].Code != fhir.LOINCRadiologyStudy {
		t.Errorf("code = %q", r.Code.Coding[0].Code)
	}
	if len(r.Result) != len(result.Observations) {
		t.Errorf("len(Result) = %d, want %d", len(r.Result), len(result.Observations))
	}
	if len(r.ImagingStudy) != 1 || r.ImagingStudy[0].Reference != fhir.URNReference(result.Study.ID) {
		t.Errorf("imagingStudy = %+v", r.ImagingStudy)
	}
}

func TestModalityCoding(t *testing.T) {
	cases := []struct {
		imageType string
		want      string
	}{
		{"chest x-ray", "DX"},
		{"abdominal CT", "CT"},
		{"brain MRI", "MR"},
		{"renal ultrasound", "US"},
		{"clinical photograph", "OT"},
	}
	for _, tc := range cases {
		if got := modalityCoding(tc.imageType).Code; got != tc.want {
			t.Errorf("modalityCoding(%q) = %q, want %q", tc.imageType, got, tc.want)
		}
	}
}

func TestMapProvenance(t *testing.T) {
	unreviewed := Map(testFinding(false), testRefs(), seqIDs(), mapperNow)
	if len(unreviewed.Provenance.Agent) != 1 {
		t.Fatalf("unreviewed agents = %d, want 1", len(unreviewed.Provenance.Agent))
	}
	reviewed := Map(testFinding(true), testRefs(), seqIDs(), mapperNow)
	if len(reviewed.Provenance.Agent) != 2 {
		t.Fatalf("reviewed agents = %d, want 2", len(reviewed.Provenance.Agent))
	}
	if reviewed.Provenance.Agent[1].Type.Coding[0].Code != fhir.AgentTypeVerifier {
		t.Error("second agent must be the verifier")
	}
}

func TestMapDeterministicGivenIDs(t *testing.T) {
	a, _ := json.Marshal(Map(testFinding(true), testRefs(), seqIDs(), mapperNow))
	b, _ := json.Marshal(Map(testFinding(true), testRefs(), seqIDs(), mapperNow))
	if string(a) != string(b) {
		t.Error("identical inputs and ids must produce byte-identical output")
	}
}
