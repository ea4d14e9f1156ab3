package export

import (
	"github.com/mediscribe/mediscribe/internal/platform/fhir"
)

// Identity is the clinician and facility configuration consumed by exports.
// It is supplied by the settings layer; the export service never reads
// global state for it.
type Identity struct {
	IdentifierSystem string
	ClinicianID      string
	ClinicianName    string
	FacilityID       string
	FacilityName     string
}

// identityResources are the Patient, Practitioner, and Organization built
// fresh for one export, with the urn:uuid references the mapped resources
// point at.
type identityResources struct {
	Patient      *fhir.Patient
	Practitioner *fhir.Practitioner
	Organization *fhir.Organization

	PatientRef      fhir.Reference
	PractitionerRef fhir.Reference
	OrganizationRef fhir.Reference
}

// buildIdentity creates the identity resources for an export. The Patient is
// de-identified: it carries only the patient identifier under the configured
// system and no demographics.
func buildIdentity(patientIdentifier string, id Identity, newID fhir.IDFunc) identityResources {
	patient := fhir.NewPatient(newID(), fhir.PatientIdentity{
		Identifier:       patientIdentifier,
		IdentifierSystem: id.IdentifierSystem,
	})
	practitioner := fhir.NewPractitioner(newID(), fhir.PractitionerIdentity{
		Name:             id.ClinicianName,
		Identifier:       id.ClinicianID,
		IdentifierSystem: id.IdentifierSystem,
	})
	organization := fhir.NewOrganization(newID(), fhir.OrganizationIdentity{
		Name:             id.FacilityName,
		Identifier:       id.FacilityID,
		IdentifierSystem: id.IdentifierSystem,
	})
	return identityResources{
		Patient:      patient,
		Practitioner: practitioner,
		Organization: organization,

		PatientRef:      fhir.Reference{Reference: fhir.URNReference(patient.ID)},
		PractitionerRef: fhir.Reference{Reference: fhir.URNReference(practitioner.ID), Display: id.ClinicianName},
		OrganizationRef: fhir.Reference{Reference: fhir.URNReference(organization.ID), Display: id.FacilityName},
	}
}

// entries returns the identity resources as bundle entries.
func (ir identityResources) entries() []fhir.BundleEntry {
	return []fhir.BundleEntry{
		{FullURL: fhir.URNReference(ir.Patient.ID), Resource: ir.Patient},
		{FullURL: fhir.URNReference(ir.Practitioner.ID), Resource: ir.Practitioner},
		{FullURL: fhir.URNReference(ir.Organization.ID), Resource: ir.Organization},
	}
}
