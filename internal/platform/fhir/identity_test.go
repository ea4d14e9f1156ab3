package fhir

import "testing"

func TestNewPatient_DeidentifiedByDefault(t *testing.T) {
	p := NewPatient("pat-1", PatientIdentity{Identifier: "MRN-0042"})

	if len(p.Identifier) != 1 || p.Identifier[0].Value != "MRN-0042" {
		t.Fatalf("identifier = %+v", p.Identifier)
	}
	if p.Identifier[0].System != DefaultIdentifierSystem {
		t.Errorf("identifier system = %q, want default", p.Identifier[0].System)
	}
	if p.Name != nil || p.Gender != "" || p.BirthDate != "" {
		t.Error("de-identified patient must omit name and demographics")
	}
}

func TestNewPatient_ExplicitPII(t *testing.T) {
	p := NewPatient("pat-1", PatientIdentity{
		Identifier:       "MRN-0042",
		IdentifierSystem: "https://hospital.example/mrn",
		FamilyName:       "Okafor",
		GivenNames:       []string{"Ada"},
		Gender:           "female",
	})
	if p.Identifier[0].System != "https://hospital.example/mrn" {
		t.Errorf("identifier system = %q", p.Identifier[0].System)
	}
	if len(p.Name) != 1 || p.Name[0].Family != "Okafor" {
		t.Errorf("name = %+v", p.Name)
	}
	if p.Gender != "female" {
		t.Errorf("gender = %q", p.Gender)
	}
}

func TestNewPractitionerAndOrganization(t *testing.T) {
	pr := NewPractitioner("pr-1", PractitionerIdentity{Name: "Dr. Osei", Identifier: "NPI-1"})
	if pr.ResourceType != "Practitioner" || pr.Name[0].Family != "Dr. Osei" {
		t.Errorf("practitioner = %+v", pr)
	}
	org := NewOrganization("org-1", OrganizationIdentity{Name: "Rural Health Post", Identifier: "F-9"})
	if org.ResourceType != "Organization" || org.Name != "Rural Health Post" {
		t.Errorf("organization = %+v", org)
	}
}
