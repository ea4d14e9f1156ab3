package labresults

import (
	"strconv"
	"time"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

// Refs carries the identity references a mapped report points at.
type Refs struct {
	Patient      fhir.Reference
	Practitioner fhir.Reference
}

// MapResult is the FHIR resource set produced from one lab summary.
type MapResult struct {
	Report       *fhir.DiagnosticReport
	Observations []*fhir.Observation
	Provenance   *fhir.Provenance
}

// Resources returns every mapped resource with its id, report first.
func (m *MapResult) Resources() ([]any, []string) {
	res := []any{m.Report}
	ids := []string{m.Report.ID}
	for _, o := range m.Observations {
		res, ids = append(res, o), append(ids, o.ID)
	}
	res, ids = append(res, m.Provenance), append(ids, m.Provenance.ID)
	return res, ids
}

const deviceDisplay = "MediScribe on-device document transcription model"

// Map converts a validated lab summary into its FHIR resource set.
// Deterministic given the record, refs, id source, and clock.
//
// The report stays "preliminary" even after review: the summary restates
// reported values, it is not a verified laboratory result. The limitations
// disclaimer appears verbatim in the report narrative.
func Map(result *LabResult, refs Refs, newID fhir.IDFunc, now time.Time) *MapResult {
	data := result.Data
	effective := fhir.FormatInstant(result.CreatedAt)

	var observations []*fhir.Observation
	var lines []string
	for _, test := range data.Tests {
		line := test.TestName + ": " + test.Value
		if test.Unit != "" {
			line += " " + test.Unit
		}
		lines = append(lines, line)

		o := &fhir.Observation{
			ResourceType:      "Observation",
			ID:                newID(),
			Status:            fhirmodels.ObservationStatusPreliminary,
			Category:          []fhir.CodeableConcept{fhir.ObservationCategoryConcept("laboratory")},
			Code:              AnalyteConcept(test.TestName),
			Subject:           &refs.Patient,
			EffectiveDateTime: effective,
		}
		if v, err := strconv.ParseFloat(test.Value, 64); err == nil {
			o.ValueQuantity = &fhir.Quantity{Value: &v, Unit: test.Unit}
		} else {
			o.ValueString = test.Value
		}
		if test.ReferenceRange != "" {
			o.ReferenceRange = []fhir.ObservationReferenceRange{{Text: test.ReferenceRange}}
		}
		if test.Flag != "" {
			o.Interpretation = []fhir.CodeableConcept{{Text: test.Flag}}
		}
		observations = append(observations, o)
	}

	results := make([]fhir.Reference, 0, len(observations))
	for _, o := range observations {
		results = append(results, fhir.Reference{Reference: fhir.URNReference(o.ID)})
	}

	report := &fhir.DiagnosticReport{
		ResourceType: "DiagnosticReport",
		ID:           newID(),
		Text:         fhir.ReportNarrative("Laboratory results", lines, data.Limitations),
		Status:       fhirmodels.DiagnosticReportStatusPreliminary,
		Category:     []fhir.CodeableConcept{fhir.DiagnosticServiceConcept("LAB", "Laboratory")},
		Code: fhir.CodeableConcept{Coding: []fhir.Coding{
			fhir.LOINCCoding(fhir.LOINCLabReportPanel, "Laboratory report"),
		}},
		Subject:           &refs.Patient,
		EffectiveDateTime: effective,
		Result:            results,
	}

	targets := []fhir.Reference{{Reference: fhir.URNReference(report.ID)}}
	for _, o := range observations {
		targets = append(targets, fhir.Reference{Reference: fhir.URNReference(o.ID)})
	}
	var reviewer *fhir.Reference
	if result.ExportReady() {
		reviewer = &refs.Practitioner
	}
	provenance := fhir.NewAIProvenance(newID(), targets, deviceDisplay, reviewer, now)

	return &MapResult{
		Report:       report,
		Observations: observations,
		Provenance:   provenance,
	}
}
