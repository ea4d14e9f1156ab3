package imaging

import (
	"sort"
	"strings"
	"time"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

// Refs carries the identity references a mapped report points at.
type Refs struct {
	Patient      fhir.Reference
	Practitioner fhir.Reference
}

// MapResult is the FHIR resource set produced from one findings summary.
type MapResult struct {
	Report       *fhir.DiagnosticReport
	Study        *fhir.ImagingStudy
	Observations []*fhir.Observation
	Provenance   *fhir.Provenance
}

// Resources returns every mapped resource with its id, report first, in a
// fixed order suitable for bundle assembly.
func (m *MapResult) Resources() ([]any, []string) {
	res := []any{m.Report, m.Study}
	ids := []string{m.Report.ID, m.Study.ID}
	for _, o := range m.Observations {
		res, ids = append(res, o), append(ids, o.ID)
	}
	res, ids = append(res, m.Provenance), append(ids, m.Provenance.ID)
	return res, ids
}

// modalityCoding derives a DICOM modality code from the free-text image
// type. Unrecognized types map to OT (other).
func modalityCoding(imageType string) fhir.Coding {
	t := strings.ToLower(imageType)
	code, display := "OT", "Other"
	switch {
	case strings.Contains(t, "x-ray") || strings.Contains(t, "xray") || strings.Contains(t, "radiograph"):
		code, display = "DX", "Digital Radiography"
	case strings.Contains(t, "ct"):
		code, display = "CT", "Computed Tomography"
	case strings.Contains(t, "mri") || strings.Contains(t, "mr "):
		code, display = "MR", "Magnetic Resonance"
	case strings.Contains(t, "ultrasound"):
		code, display = "US", "Ultrasound"
	}
	return fhir.Coding{System: fhir.SystemDICOMModality, Code: code, Display: display}
}

const deviceDisplay = "MediScribe on-device image description model"

// Map converts a validated findings summary into its FHIR resource set.
// Deterministic given the finding, refs, id source, and clock.
//
// The report stays "preliminary" even after review: an AI-drafted imaging
// description is never promoted to a final diagnostic result, review only
// releases it for export. The limitations disclaimer appears verbatim in the
// report narrative.
func Map(finding *ImagingFinding, refs Refs, newID fhir.IDFunc, now time.Time) *MapResult {
	data := finding.Data
	effective := fhir.FormatInstant(finding.CreatedAt)

	regions := make([]string, 0, len(data.AnatomicalObservations))
	for region := range data.AnatomicalObservations {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	var observations []*fhir.Observation
	var lines []string
	for _, region := range regions {
		for _, text := range data.AnatomicalObservations[region] {
			lines = append(lines, region+": "+text)
			observations = append(observations, &fhir.Observation{
				ResourceType:      "Observation",
				ID:                newID(),
				Status:            fhirmodels.ObservationStatusPreliminary,
				Category:          []fhir.CodeableConcept{fhir.ObservationCategoryConcept("imaging")},
				Code:              fhir.CodeableConcept{Text: region},
				Subject:           &refs.Patient,
				EffectiveDateTime: effective,
				ValueString:       text,
			})
		}
	}

	study := &fhir.ImagingStudy{
		ResourceType: "ImagingStudy",
		ID:           newID(),
		Status:       fhirmodels.ImagingStudyStatusAvailable,
		Modality:     []fhir.Coding{modalityCoding(data.ImageType)},
		Subject:      refs.Patient,
		Started:      effective,
		Description:  data.ImageType,
	}

	results := make([]fhir.Reference, 0, len(observations))
	for _, o := range observations {
		results = append(results, fhir.Reference{Reference: fhir.URNReference(o.ID)})
	}

	report := &fhir.DiagnosticReport{
		ResourceType: "DiagnosticReport",
		ID:           newID(),
		Text:         fhir.ReportNarrative(data.ImageType, lines, data.Limitations),
		Status:       fhirmodels.DiagnosticReportStatusPreliminary,
		Category:     []fhir.CodeableConcept{fhir.DiagnosticServiceConcept("RAD", "Radiology")},
		Code: fhir.CodeableConcept{Coding: []fhir.Coding{
			fhir.LOINCCoding(fhir.LOINCRadiologyStudy, "Diagnostic imaging study"),
		}},
		Subject:           &refs.Patient,
		EffectiveDateTime: effective,
		Result:            results,
		ImagingStudy:      []fhir.Reference{{Reference: fhir.URNReference(study.ID)}},
		Conclusion:        data.Limitations,
	}

	targets := []fhir.Reference{
		{Reference: fhir.URNReference(report.ID)},
		{Reference: fhir.URNReference(study.ID)},
	}
	for _, o := range observations {
		targets = append(targets, fhir.Reference{Reference: fhir.URNReference(o.ID)})
	}
	var reviewer *fhir.Reference
	if finding.ExportReady() {
		reviewer = &refs.Practitioner
	}
	provenance := fhir.NewAIProvenance(newID(), targets, deviceDisplay, reviewer, now)

	return &MapResult{
		Report:       report,
		Study:        study,
		Observations: observations,
		Provenance:   provenance,
	}
}
