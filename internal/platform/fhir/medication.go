package fhir

// ---------------------------------------------------------------------------
// MedicationStatement
// ---------------------------------------------------------------------------

type MedicationStatement struct {
	ResourceType              string          `json:"resourceType"`
	ID                        string          `json:"id,omitempty"`
	Status                    string          `json:"status"`
	MedicationCodeableConcept CodeableConcept `json:"medicationCodeableConcept"`
	Subject                   Reference       `json:"subject"`
	EffectiveDateTime         string          `json:"effectiveDateTime,omitempty"`
	DateAsserted              string          `json:"dateAsserted,omitempty"`
	InformationSource         *Reference      `json:"informationSource,omitempty"`
	Dosage                    []Dosage        `json:"dosage,omitempty"`
}

type Dosage struct {
	Text string `json:"text,omitempty"`
}

// ---------------------------------------------------------------------------
// AllergyIntolerance
// ---------------------------------------------------------------------------

type AllergyIntolerance struct {
	ResourceType       string                       `json:"resourceType"`
	ID                 string                       `json:"id,omitempty"`
	ClinicalStatus     *CodeableConcept             `json:"clinicalStatus,omitempty"`
	VerificationStatus *CodeableConcept             `json:"verificationStatus,omitempty"`
	Code               *CodeableConcept             `json:"code,omitempty"`
	Patient            Reference                    `json:"patient"`
	RecordedDate       string                       `json:"recordedDate,omitempty"`
	Recorder           *Reference                   `json:"recorder,omitempty"`
	Reaction           []AllergyIntoleranceReaction `json:"reaction,omitempty"`
}

type AllergyIntoleranceReaction struct {
	Manifestation []CodeableConcept `json:"manifestation"`
	Description   string            `json:"description,omitempty"`
}

// AllergyClinicalStatusActive is the standard "active" clinical status.
func AllergyClinicalStatusActive() *CodeableConcept {
	return &CodeableConcept{Coding: []Coding{{
		System: SystemAllergyClinicalStatus,
		Code:   "active",
	}}}
}

// AllergyVerificationUnconfirmed marks a reported allergy that has not been
// clinically verified. AI-transcribed allergies always start here.
func AllergyVerificationUnconfirmed() *CodeableConcept {
	return &CodeableConcept{Coding: []Coding{{
		System: SystemAllergyVerification,
		Code:   "unconfirmed",
	}}}
}

// ---------------------------------------------------------------------------
// ServiceRequest
// ---------------------------------------------------------------------------

type ServiceRequest struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Status       string            `json:"status"`
	Intent       string            `json:"intent"`
	Priority     string            `json:"priority,omitempty"`
	Code         *CodeableConcept  `json:"code,omitempty"`
	Subject      Reference         `json:"subject"`
	AuthoredOn   string            `json:"authoredOn,omitempty"`
	Requester    *Reference        `json:"requester,omitempty"`
	ReasonCode   []CodeableConcept `json:"reasonCode,omitempty"`
	Note         []Annotation      `json:"note,omitempty"`
}
