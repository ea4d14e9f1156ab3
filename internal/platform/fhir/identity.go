package fhir

// ---------------------------------------------------------------------------
// Patient / Practitioner / Organization
// ---------------------------------------------------------------------------

type Patient struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Meta         *Meta        `json:"meta,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Name         []HumanName  `json:"name,omitempty"`
	Gender       string       `json:"gender,omitempty"`
	BirthDate    string       `json:"birthDate,omitempty"`
}

type Practitioner struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Name         []HumanName  `json:"name,omitempty"`
}

type Organization struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Name         string       `json:"name,omitempty"`
}

// PatientIdentity is the caller-supplied identity used to build the Patient
// resource for an export. Name and demographics stay empty unless the caller
// deliberately provides them: the mapped Patient is de-identified by default
// and carries only an identifier under the configured system URI.
type PatientIdentity struct {
	Identifier       string
	IdentifierSystem string
	// Optional PII, omitted by default.
	FamilyName string
	GivenNames []string
	Gender     string
	BirthDate  string
}

// DefaultIdentifierSystem is used when the caller does not configure one.
const DefaultIdentifierSystem = "urn:mediscribe:patient-id"

// NewPatient builds the de-identified-by-default Patient resource.
func NewPatient(id string, identity PatientIdentity) *Patient {
	system := identity.IdentifierSystem
	if system == "" {
		system = DefaultIdentifierSystem
	}
	p := &Patient{
		ResourceType: "Patient",
		ID:           id,
		Meta:         &Meta{Profile: []string{ProfileEUBasePatient}},
		Identifier:   []Identifier{{System: system, Value: identity.Identifier}},
	}
	if identity.FamilyName != "" || len(identity.GivenNames) > 0 {
		p.Name = []HumanName{{Use: "official", Family: identity.FamilyName, Given: identity.GivenNames}}
	}
	p.Gender = identity.Gender
	p.BirthDate = identity.BirthDate
	return p
}

// PractitionerIdentity is the clinician identity supplied by the settings
// layer; the core never reads it from global state.
type PractitionerIdentity struct {
	Name             string
	Identifier       string
	IdentifierSystem string
}

// NewPractitioner builds the Practitioner resource for the reviewing
// clinician.
func NewPractitioner(id string, identity PractitionerIdentity) *Practitioner {
	system := identity.IdentifierSystem
	if system == "" {
		system = DefaultIdentifierSystem
	}
	pr := &Practitioner{
		ResourceType: "Practitioner",
		ID:           id,
		Identifier:   []Identifier{{System: system, Value: identity.Identifier}},
	}
	if identity.Name != "" {
		pr.Name = []HumanName{{Use: "official", Family: identity.Name}}
	}
	return pr
}

// OrganizationIdentity is the facility identity supplied by the settings
// layer.
type OrganizationIdentity struct {
	Name             string
	Identifier       string
	IdentifierSystem string
}

// NewOrganization builds the custodian Organization resource.
func NewOrganization(id string, identity OrganizationIdentity) *Organization {
	system := identity.IdentifierSystem
	if system == "" {
		system = DefaultIdentifierSystem
	}
	return &Organization{
		ResourceType: "Organization",
		ID:           id,
		Identifier:   []Identifier{{System: system, Value: identity.Identifier}},
		Name:         identity.Name,
	}
}
