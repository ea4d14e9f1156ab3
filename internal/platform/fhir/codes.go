package fhir

// Terminology system URIs.
const (
	SystemLOINC                   = "http://loinc.org"
	SystemUCUM                    = "http://unitsofmeasure.org"
	SystemObservationCategory     = "http://terminology.hl7.org/CodeSystem/observation-category"
	SystemDiagnosticServiceSector = "http://terminology.hl7.org/CodeSystem/v2-0074"
	SystemProvenanceAgentType     = "http://terminology.hl7.org/CodeSystem/provenance-participant-type"
	SystemV3DataOperation         = "http://terminology.hl7.org/CodeSystem/v3-DataOperation"
	SystemListEmptyReason         = "http://terminology.hl7.org/CodeSystem/list-empty-reason"
	SystemAllergyClinicalStatus   = "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical"
	SystemAllergyVerification     = "http://terminology.hl7.org/CodeSystem/allergyintolerance-verification"
	SystemDICOMModality           = "http://dicom.nema.org/resources/ontology/DCM"
)

// Fixed LOINC codes for vital signs. These are interoperability constants and
// must be reproduced bit-exact.
const (
	LOINCBodyTemperature    = "8310-5"
	LOINCHeartRate          = "8867-4"
	LOINCRespiratoryRate    = "9279-1"
	LOINCBloodPressurePanel = "55284-4"
	LOINCSystolicBP         = "8480-6"
	LOINCDiastolicBP        = "8462-4"
	LOINCOxygenSaturation   = "59408-5"
)

// LOINC document and section codes used by compositions.
const (
	LOINCPatientSummaryDoc   = "60591-5"
	LOINCProgressNote        = "11506-3"
	LOINCResultsSection      = "30954-2"
	LOINCDocumentsSection    = "55112-7"
	LOINCRadiologyStudy      = "18748-4"
	LOINCLabReportPanel      = "11502-2"
)

// UCUM unit codes for vital-sign quantities.
const (
	UCUMCelsius   = "Cel"
	UCUMPerMinute = "/min"
	UCUMMmHg      = "mm[Hg]"
	UCUMPercent   = "%"
)

// Profile URLs asserted in Meta.Profile on exported documents.
const (
	ProfileIPSBundle      = "http://hl7.org/fhir/uv/ips/StructureDefinition/Bundle-uv-ips"
	ProfileIPSComposition = "http://hl7.org/fhir/uv/ips/StructureDefinition/Composition-uv-ips"
	ProfileEUBasePatient  = "http://hl7.eu/fhir/base/StructureDefinition/patient-eu"
)

// LOINCCoding builds a LOINC Coding.
func LOINCCoding(code, display string) Coding {
	return Coding{System: SystemLOINC, Code: code, Display: display}
}

// UCUMQuantity builds a Quantity with a UCUM-coded unit.
func UCUMQuantity(value float64, unit, code string) *Quantity {
	return &Quantity{Value: &value, Unit: unit, System: SystemUCUM, Code: code}
}

// ObservationCategoryConcept builds the standard observation-category concept
// ("vital-signs", "laboratory", "imaging").
func ObservationCategoryConcept(code string) CodeableConcept {
	return CodeableConcept{Coding: []Coding{{System: SystemObservationCategory, Code: code}}}
}

// EmptyReasonUnavailable is the structured emptyReason attached to document
// sections with no entries, per the IPS profile.
func EmptyReasonUnavailable() *CodeableConcept {
	return &CodeableConcept{
		Coding: []Coding{{
			System:  SystemListEmptyReason,
			Code:    "unavailable",
			Display: "Unavailable",
		}},
		Text: "No reviewed content is available for this section.",
	}
}
