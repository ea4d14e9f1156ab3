package fhir

// ---------------------------------------------------------------------------
// Observation
// ---------------------------------------------------------------------------

type Observation struct {
	ResourceType      string                      `json:"resourceType"`
	ID                string                      `json:"id,omitempty"`
	Meta              *Meta                       `json:"meta,omitempty"`
	Text              *Narrative                  `json:"text,omitempty"`
	Status            string                      `json:"status"`
	Category          []CodeableConcept           `json:"category,omitempty"`
	Code              CodeableConcept             `json:"code"`
	Subject           *Reference                  `json:"subject,omitempty"`
	EffectiveDateTime string                      `json:"effectiveDateTime,omitempty"`
	Issued            string                      `json:"issued,omitempty"`
	Performer         []Reference                 `json:"performer,omitempty"`
	ValueQuantity     *Quantity                   `json:"valueQuantity,omitempty"`
	ValueString       string                      `json:"valueString,omitempty"`
	Interpretation    []CodeableConcept           `json:"interpretation,omitempty"`
	ReferenceRange    []ObservationReferenceRange `json:"referenceRange,omitempty"`
	Component         []ObservationComponent      `json:"component,omitempty"`
}

type ObservationComponent struct {
	Code          CodeableConcept `json:"code"`
	ValueQuantity *Quantity       `json:"valueQuantity,omitempty"`
	ValueString   string          `json:"valueString,omitempty"`
}

type ObservationReferenceRange struct {
	Low  *Quantity `json:"low,omitempty"`
	High *Quantity `json:"high,omitempty"`
	Text string    `json:"text,omitempty"`
}

// ---------------------------------------------------------------------------
// DiagnosticReport
// ---------------------------------------------------------------------------

type DiagnosticReport struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id,omitempty"`
	Meta              *Meta             `json:"meta,omitempty"`
	Text              *Narrative        `json:"text,omitempty"`
	Status            string            `json:"status"`
	Category          []CodeableConcept `json:"category,omitempty"`
	Code              CodeableConcept   `json:"code"`
	Subject           *Reference        `json:"subject,omitempty"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	Issued            string            `json:"issued,omitempty"`
	Performer         []Reference       `json:"performer,omitempty"`
	Result            []Reference       `json:"result,omitempty"`
	ImagingStudy      []Reference       `json:"imagingStudy,omitempty"`
	Conclusion        string            `json:"conclusion,omitempty"`
}

// DiagnosticServiceConcept builds the v2-0074 service-section category
// ("LAB", "RAD").
func DiagnosticServiceConcept(code, display string) CodeableConcept {
	return CodeableConcept{Coding: []Coding{{
		System:  SystemDiagnosticServiceSector,
		Code:    code,
		Display: display,
	}}}
}

// ---------------------------------------------------------------------------
// ImagingStudy
// ---------------------------------------------------------------------------

type ImagingStudy struct {
	ResourceType      string               `json:"resourceType"`
	ID                string               `json:"id,omitempty"`
	Status            string               `json:"status"`
	Modality          []Coding             `json:"modality,omitempty"`
	Subject           Reference            `json:"subject"`
	Started           string               `json:"started,omitempty"`
	NumberOfSeries    int                  `json:"numberOfSeries,omitempty"`
	NumberOfInstances int                  `json:"numberOfInstances,omitempty"`
	Description       string               `json:"description,omitempty"`
	Series            []ImagingStudySeries `json:"series,omitempty"`
}

type ImagingStudySeries struct {
	UID               string `json:"uid"`
	Number            int    `json:"number,omitempty"`
	Modality          Coding `json:"modality"`
	Description       string `json:"description,omitempty"`
	NumberOfInstances int    `json:"numberOfInstances,omitempty"`
}

// ---------------------------------------------------------------------------
// ClinicalImpression
// ---------------------------------------------------------------------------

type ClinicalImpression struct {
	ResourceType      string       `json:"resourceType"`
	ID                string       `json:"id,omitempty"`
	Text              *Narrative   `json:"text,omitempty"`
	Status            string       `json:"status"`
	Description       string       `json:"description,omitempty"`
	Subject           Reference    `json:"subject"`
	EffectiveDateTime string       `json:"effectiveDateTime,omitempty"`
	Date              string       `json:"date,omitempty"`
	Assessor          *Reference   `json:"assessor,omitempty"`
	Summary           string       `json:"summary,omitempty"`
	Note              []Annotation `json:"note,omitempty"`
}
