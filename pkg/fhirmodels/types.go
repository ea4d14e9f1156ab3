// Package fhirmodels holds FHIR R4 value-set constants shared by the mappers
// and the export layer.
package fhirmodels

// CompositionStatus values per FHIR R4. A signed note maps to final; anything
// lower stays preliminary.
const (
	CompositionStatusPreliminary    = "preliminary"
	CompositionStatusFinal          = "final"
	CompositionStatusAmended        = "amended"
	CompositionStatusEnteredInError = "entered-in-error"
)

// ClinicalImpressionStatus values per FHIR R4. AI-authored impressions stay
// in-progress until a clinician has reviewed them.
const (
	ClinicalImpressionStatusInProgress = "in-progress"
	ClinicalImpressionStatusCompleted  = "completed"
)

// DiagnosticReportStatus values per FHIR R4 (subset emitted here).
const (
	DiagnosticReportStatusPreliminary = "preliminary"
	DiagnosticReportStatusFinal       = "final"
)

// ObservationStatus values per FHIR R4 (subset emitted here).
const (
	ObservationStatusPreliminary = "preliminary"
	ObservationStatusFinal       = "final"
)

// ImagingStudyStatus values per FHIR R4.
const (
	ImagingStudyStatusRegistered = "registered"
	ImagingStudyStatusAvailable  = "available"
)

// MedicationStatementStatus values per FHIR R4 (subset emitted here).
const (
	MedicationStatementStatusActive  = "active"
	MedicationStatementStatusUnknown = "unknown"
)

// ServiceRequestStatus and intent values per FHIR R4.
const (
	ServiceRequestStatusActive    = "active"
	ServiceRequestStatusCompleted = "completed"
	ServiceRequestStatusRevoked   = "revoked"

	ServiceRequestIntentOrder = "order"
)

// ServiceRequestPriority values per FHIR R4.
const (
	PriorityRoutine = "routine"
	PriorityUrgent  = "urgent"
	PriorityASAP    = "asap"
	PriorityStat    = "stat"
)

// CompositionAttesterMode values per FHIR R4.
const (
	AttesterModeProfessional = "professional"
	AttesterModeLegal        = "legal"
)
