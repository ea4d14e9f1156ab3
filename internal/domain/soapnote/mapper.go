package soapnote

import (
	"strings"
	"time"

	"github.com/mediscribe/mediscribe/internal/domain/vitals"
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

// Refs carries the identity references a mapped document points at. The
// caller resolves them; the mapper performs no I/O.
type Refs struct {
	Patient      fhir.Reference
	Practitioner fhir.Reference
	Organization fhir.Reference
}

// MapResult is the FHIR resource set produced from one note.
type MapResult struct {
	Composition          *fhir.Composition
	ClinicalImpression   *fhir.ClinicalImpression
	MedicationStatements []*fhir.MedicationStatement
	AllergyIntolerances  []*fhir.AllergyIntolerance
	VitalObservations    []*fhir.Observation
	Provenance           *fhir.Provenance
}

// Resources returns every mapped resource with its id, Composition first, in
// a fixed order suitable for bundle assembly.
func (m *MapResult) Resources() ([]any, []string) {
	res := []any{m.ClinicalImpression}
	ids := []string{m.ClinicalImpression.ID}
	for _, ms := range m.MedicationStatements {
		res, ids = append(res, ms), append(ids, ms.ID)
	}
	for _, ai := range m.AllergyIntolerances {
		res, ids = append(res, ai), append(ids, ai.ID)
	}
	for _, o := range m.VitalObservations {
		res, ids = append(res, o), append(ids, o.ID)
	}
	res, ids = append(res, m.Provenance), append(ids, m.Provenance.ID)
	return res, ids
}

func compositionStatus(s ValidationStatus) string {
	if s == StatusSigned {
		return fhirmodels.CompositionStatusFinal
	}
	return fhirmodels.CompositionStatusPreliminary
}

func impressionStatus(s ValidationStatus) string {
	if s == StatusReviewed || s == StatusSigned {
		return fhirmodels.ClinicalImpressionStatusCompleted
	}
	return fhirmodels.ClinicalImpressionStatusInProgress
}

// Map converts a validated note into its FHIR resource set. It is
// deterministic given the note, refs, id source, and clock: two calls with
// the same inputs yield byte-identical JSON.
//
// Every AI-generated resource is listed as a Provenance target with a
// machine agent of type "AIs"; once reviewed, the reviewing clinician is
// added as a distinct verifier agent. The Provenance is never omitted.
func Map(note *SOAPNote, refs Refs, newID fhir.IDFunc, now time.Time) *MapResult {
	data := note.Data
	reviewed := note.ExportReady()

	impression := &fhir.ClinicalImpression{
		ResourceType:      "ClinicalImpression",
		ID:                newID(),
		Status:            impressionStatus(note.Status),
		Description:       data.ChiefComplaint,
		Subject:           refs.Patient,
		EffectiveDateTime: fhir.FormatInstant(note.CreatedAt),
		Summary:           data.ClinicalImpression,
	}
	if reviewed {
		impression.Assessor = &refs.Practitioner
	}

	var medications []*fhir.MedicationStatement
	for _, m := range data.Medications {
		ms := &fhir.MedicationStatement{
			ResourceType:              "MedicationStatement",
			ID:                        newID(),
			Status:                    fhirmodels.MedicationStatementStatusUnknown,
			MedicationCodeableConcept: fhir.CodeableConcept{Text: m.Name},
			Subject:                   refs.Patient,
			DateAsserted:              fhir.FormatInstant(note.CreatedAt),
			InformationSource:         &refs.Patient,
		}
		if m.Dosage != "" {
			ms.Dosage = []fhir.Dosage{{Text: m.Dosage}}
		}
		medications = append(medications, ms)
	}

	var allergies []*fhir.AllergyIntolerance
	for _, a := range data.Allergies {
		allergies = append(allergies, &fhir.AllergyIntolerance{
			ResourceType:       "AllergyIntolerance",
			ID:                 newID(),
			ClinicalStatus:     fhir.AllergyClinicalStatusActive(),
			VerificationStatus: fhir.AllergyVerificationUnconfirmed(),
			Code:               &fhir.CodeableConcept{Text: a},
			Patient:            refs.Patient,
			RecordedDate:       fhir.FormatInstant(note.CreatedAt),
		})
	}

	var vitalObs []*fhir.Observation
	if data.VitalSigns != nil {
		vitalObs = vitals.MapObservations(*data.VitalSigns, refs.Patient, note.CreatedAt, newID)
	}

	composition := buildComposition(note, refs, impression, medications, vitalObs, newID, now)

	targets := []fhir.Reference{{Reference: fhir.URNReference(composition.ID)}}
	targets = append(targets, fhir.Reference{Reference: fhir.URNReference(impression.ID)})
	for _, ms := range medications {
		targets = append(targets, fhir.Reference{Reference: fhir.URNReference(ms.ID)})
	}
	for _, ai := range allergies {
		targets = append(targets, fhir.Reference{Reference: fhir.URNReference(ai.ID)})
	}
	for _, o := range vitalObs {
		targets = append(targets, fhir.Reference{Reference: fhir.URNReference(o.ID)})
	}
	var reviewer *fhir.Reference
	if reviewed {
		reviewer = &refs.Practitioner
	}
	provenance := fhir.NewAIProvenance(newID(), targets, deviceDisplay, reviewer, now)

	return &MapResult{
		Composition:          composition,
		ClinicalImpression:   impression,
		MedicationStatements: medications,
		AllergyIntolerances:  allergies,
		VitalObservations:    vitalObs,
		Provenance:           provenance,
	}
}

const deviceDisplay = "MediScribe on-device clinical language model"

func buildComposition(note *SOAPNote, refs Refs, impression *fhir.ClinicalImpression,
	medications []*fhir.MedicationStatement, vitalObs []*fhir.Observation,
	newID fhir.IDFunc, now time.Time) *fhir.Composition {

	data := note.Data

	objectiveEntries := make([]fhir.Reference, 0, len(vitalObs))
	for _, o := range vitalObs {
		objectiveEntries = append(objectiveEntries, fhir.Reference{Reference: fhir.URNReference(o.ID)})
	}
	planEntries := make([]fhir.Reference, 0, len(medications))
	for _, ms := range medications {
		planEntries = append(planEntries, fhir.Reference{Reference: fhir.URNReference(ms.ID)})
	}

	subjective := fhir.NewSection("Subjective", sectionCode("61150-9", "Subjective Narrative"), nil)
	subjective.Text = fhir.NewNarrative(data.ChiefComplaint, data.Subjective)

	objective := fhir.NewSection("Objective", sectionCode("61149-1", "Objective Narrative"), objectiveEntries)
	objective.Text = fhir.NewNarrative(data.Objective)

	assessment := fhir.NewSection("Assessment", sectionCode("51848-0", "Evaluation note"),
		[]fhir.Reference{{Reference: fhir.URNReference(impression.ID)}})
	assessment.Text = fhir.NewNarrative(data.ClinicalImpression)

	plan := fhir.NewSection("Plan", sectionCode("18776-5", "Plan of care note"), planEntries)
	plan.Text = fhir.NewNarrative(strings.Join(data.Interventions, "; "))

	c := &fhir.Composition{
		ResourceType: "Composition",
		ID:           newID(),
		Text:         fhir.NewNarrative(data.ChiefComplaint, data.Disclaimer),
		Status:       compositionStatus(note.Status),
		Type: fhir.CodeableConcept{Coding: []fhir.Coding{
			fhir.LOINCCoding(fhir.LOINCProgressNote, "Progress note"),
		}},
		Subject:   &refs.Patient,
		Date:      fhir.FormatInstant(now),
		Author:    []fhir.Reference{refs.Practitioner},
		Title:     "SOAP Note",
		Custodian: &refs.Organization,
		Section:   []fhir.CompositionSection{subjective, objective, assessment, plan},
	}
	if note.Status == StatusReviewed && note.ReviewedAt != nil {
		c.Attester = []fhir.CompositionAttester{{
			Mode:  fhirmodels.AttesterModeProfessional,
			Time:  fhir.FormatInstant(*note.ReviewedAt),
			Party: &refs.Practitioner,
		}}
	}
	if note.Status == StatusSigned && note.SignedAt != nil {
		c.Attester = []fhir.CompositionAttester{{
			Mode:  fhirmodels.AttesterModeLegal,
			Time:  fhir.FormatInstant(*note.SignedAt),
			Party: &refs.Practitioner,
		}}
	}
	return c
}

func sectionCode(code, display string) *fhir.CodeableConcept {
	return &fhir.CodeableConcept{Coding: []fhir.Coding{fhir.LOINCCoding(code, display)}}
}
