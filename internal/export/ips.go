package export

import (
	"context"

	"github.com/google/uuid"

	"github.com/mediscribe/mediscribe/internal/domain/imaging"
	"github.com/mediscribe/mediscribe/internal/domain/labresults"
	"github.com/mediscribe/mediscribe/internal/domain/soapnote"
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

// ExportPatientSummary produces the aggregate IPS document bundle across all
// of a patient's reviewed content. Unreviewed records are silently excluded;
// the export is blocked only when nothing reviewed exists at all. The
// summary Composition carries fixed sections: Results (lab and imaging
// reports) and Clinical Documents (notes), each with a structured
// emptyReason when it has no entries.
func (s *Service) ExportPatientSummary(ctx context.Context, patientID uuid.UUID) ([]byte, error) {
	notes, err := s.notes.ListReviewedByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	findings, err := s.imaging.ListReviewedByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	labs, err := s.labs.ListReviewedByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(notes)+len(findings)+len(labs) == 0 {
		blocked := &BlockedError{Reason: ErrNotReviewed}
		s.recordBlocked(ctx, "ips_bundle", patientID, blocked)
		return nil, blocked
	}

	now := s.now()
	ir := buildIdentity(patientID.String(), s.identity, s.newID)

	var resources []any
	var resourceIDs []string
	add := func(res []any, ids []string) {
		resources = append(resources, res...)
		resourceIDs = append(resourceIDs, ids...)
	}

	var resultEntries, documentEntries []fhir.Reference

	for _, lab := range labs {
		mapped := labresults.Map(lab, labresults.Refs{
			Patient:      ir.PatientRef,
			Practitioner: ir.PractitionerRef,
		}, s.newID, now)
		resultEntries = append(resultEntries, fhir.Reference{Reference: fhir.URNReference(mapped.Report.ID)})
		add(mapped.Resources())
	}
	for _, finding := range findings {
		mapped := imaging.Map(finding, imaging.Refs{
			Patient:      ir.PatientRef,
			Practitioner: ir.PractitionerRef,
		}, s.newID, now)
		resultEntries = append(resultEntries, fhir.Reference{Reference: fhir.URNReference(mapped.Report.ID)})
		add(mapped.Resources())
	}
	for _, note := range notes {
		mapped := soapnote.Map(note, soapnote.Refs{
			Patient:      ir.PatientRef,
			Practitioner: ir.PractitionerRef,
			Organization: ir.OrganizationRef,
		}, s.newID, now)
		documentEntries = append(documentEntries, fhir.Reference{Reference: fhir.URNReference(mapped.Composition.ID)})
		resources = append(resources, mapped.Composition)
		resourceIDs = append(resourceIDs, mapped.Composition.ID)
		add(mapped.Resources())
	}

	resources = append(resources, ir.Patient, ir.Practitioner, ir.Organization)
	resourceIDs = append(resourceIDs, ir.Patient.ID, ir.Practitioner.ID, ir.Organization.ID)

	composition := &fhir.Composition{
		ResourceType: "Composition",
		ID:           s.newID(),
		Meta:         &fhir.Meta{Profile: []string{fhir.ProfileIPSComposition}},
		Status:       fhirmodels.CompositionStatusFinal,
		Type: fhir.CodeableConcept{Coding: []fhir.Coding{
			fhir.LOINCCoding(fhir.LOINCPatientSummaryDoc, "Patient summary Document"),
		}},
		Subject:   &ir.PatientRef,
		Date:      fhir.FormatInstant(now),
		Author:    []fhir.Reference{ir.PractitionerRef},
		Title:     "Patient Summary",
		Custodian: &ir.OrganizationRef,
		Section: []fhir.CompositionSection{
			fhir.NewSection("Results", resultsSectionCode(), resultEntries),
			fhir.NewSection("Clinical Documents", documentsSectionCode(), documentEntries),
		},
	}

	bundle := fhir.NewDocumentBundle(s.newID(), composition, resources, resourceIDs, now)
	return s.encode(ctx, "ips_bundle", patientID, bundle)
}

func resultsSectionCode() *fhir.CodeableConcept {
	return &fhir.CodeableConcept{Coding: []fhir.Coding{
		fhir.LOINCCoding(fhir.LOINCResultsSection, "Relevant diagnostic tests/laboratory data Narrative"),
	}}
}

func documentsSectionCode() *fhir.CodeableConcept {
	return &fhir.CodeableConcept{Coding: []fhir.Coding{
		fhir.LOINCCoding(fhir.LOINCDocumentsSection, "Document summary"),
	}}
}
