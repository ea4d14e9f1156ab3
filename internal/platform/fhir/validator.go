package fhir

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// referencePattern matches "ResourceType/id" references; urn:uuid references
// are matched separately.
var referencePattern = regexp.MustCompile(`^[A-Z][a-zA-Z]+/[a-zA-Z0-9\-\.]{1,64}$`)

var urnPattern = regexp.MustCompile(`^urn:uuid:[0-9a-fA-F\-]{36}$`)

// knownResourceTypes lists the resource types this service emits.
var knownResourceTypes = map[string]bool{
	"Patient": true, "Practitioner": true, "Organization": true,
	"Composition": true, "ClinicalImpression": true,
	"Observation": true, "DiagnosticReport": true, "ImagingStudy": true,
	"MedicationStatement": true, "AllergyIntolerance": true,
	"ServiceRequest": true, "Provenance": true,
	"Bundle": true, "OperationOutcome": true,
}

// statusValues maps emitted resource types to their legal status values per
// FHIR R4.
var statusValues = map[string][]string{
	"Composition":         {"preliminary", "final", "amended", "entered-in-error"},
	"ClinicalImpression":  {"in-progress", "completed", "entered-in-error"},
	"Observation":         {"registered", "preliminary", "final", "amended", "corrected", "cancelled", "entered-in-error", "unknown"},
	"DiagnosticReport":    {"registered", "partial", "preliminary", "final", "amended", "corrected", "appended", "cancelled", "entered-in-error", "unknown"},
	"ImagingStudy":        {"registered", "available", "cancelled", "entered-in-error", "unknown"},
	"MedicationStatement": {"active", "completed", "entered-in-error", "intended", "stopped", "on-hold", "unknown", "not-taken"},
	"ServiceRequest":      {"draft", "active", "on-hold", "revoked", "completed", "entered-in-error", "unknown"},
}

// ValidationIssue is one problem found while checking an outgoing resource.
type ValidationIssue struct {
	Severity    string
	Code        string
	Diagnostics string
	Expression  string
}

// ValidationResult holds the outcome of validating an outgoing resource.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

func (vr *ValidationResult) addError(code, diagnostics, expr string) {
	vr.Valid = false
	vr.Issues = append(vr.Issues, ValidationIssue{
		Severity:    IssueSeverityError,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expr,
	})
}

// ToOperationOutcome converts a ValidationResult into an OperationOutcome.
func (vr *ValidationResult) ToOperationOutcome() *OperationOutcome {
	oo := &OperationOutcome{ResourceType: "OperationOutcome"}
	for _, is := range vr.Issues {
		issue := OperationOutcomeIssue{
			Severity:    is.Severity,
			Code:        is.Code,
			Diagnostics: is.Diagnostics,
		}
		if is.Expression != "" {
			issue.Expression = []string{is.Expression}
		}
		oo.Issue = append(oo.Issue, issue)
	}
	return oo
}

// Validator re-checks mapped resources before they are encoded for export.
// The mappers are the source of truth; a failure here indicates a defect, not
// bad input, and is surfaced as an encoding-class error by the export layer.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateResource validates a marshaled resource: resourceType present and
// known, status legal for the type, references well-formed.
func (v *Validator) ValidateResource(data json.RawMessage) *ValidationResult {
	result := &ValidationResult{Valid: true}

	var resource map[string]interface{}
	if err := json.Unmarshal(data, &resource); err != nil {
		result.addError(IssueTypeStructure, "invalid JSON: "+err.Error(), "")
		return result
	}
	v.validateMap(resource, result)
	return result
}

// ValidateBundle validates the bundle envelope and every entry resource.
func (v *Validator) ValidateBundle(data json.RawMessage) *ValidationResult {
	result := &ValidationResult{Valid: true}

	var bundle struct {
		ResourceType string `json:"resourceType"`
		Type         string `json:"type"`
		Entry        []struct {
			FullURL  string                 `json:"fullUrl"`
			Resource map[string]interface{} `json:"resource"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		result.addError(IssueTypeStructure, "invalid JSON: "+err.Error(), "")
		return result
	}
	if bundle.ResourceType != "Bundle" {
		result.addError(IssueTypeStructure, fmt.Sprintf("resourceType is %q, want Bundle", bundle.ResourceType), "Bundle.resourceType")
		return result
	}
	if bundle.Type != BundleTypeDocument && bundle.Type != BundleTypeCollection {
		result.addError(IssueTypeValue, fmt.Sprintf("unexpected bundle type %q", bundle.Type), "Bundle.type")
	}
	if bundle.Type == BundleTypeDocument {
		if len(bundle.Entry) == 0 {
			result.addError(IssueTypeRequired, "document bundle has no entries", "Bundle.entry")
		} else if rt, _ := bundle.Entry[0].Resource["resourceType"].(string); rt != "Composition" {
			result.addError(IssueTypeStructure, "first entry of a document bundle must be a Composition", "Bundle.entry[0]")
		}
	}
	for i, entry := range bundle.Entry {
		sub := &ValidationResult{Valid: true}
		v.validateMap(entry.Resource, sub)
		for _, is := range sub.Issues {
			is.Expression = fmt.Sprintf("Bundle.entry[%d].%s", i, is.Expression)
			result.Valid = false
			result.Issues = append(result.Issues, is)
		}
	}
	return result
}

func (v *Validator) validateMap(resource map[string]interface{}, result *ValidationResult) {
	rt, _ := resource["resourceType"].(string)
	if rt == "" {
		result.addError(IssueTypeRequired, "resourceType is required", "resourceType")
		return
	}
	if !knownResourceTypes[rt] {
		result.addError(IssueTypeValue, fmt.Sprintf("unknown resource type %q", rt), "resourceType")
		return
	}

	if valid, ok := statusValues[rt]; ok {
		status, _ := resource["status"].(string)
		if status == "" {
			result.addError(IssueTypeRequired, rt+".status is required", rt+".status")
		} else if !contains(valid, status) {
			result.addError(IssueTypeValue, fmt.Sprintf("invalid status %q for %s", status, rt), rt+".status")
		}
	}

	v.validateReferences(rt, resource, result)
}

// validateReferences walks the resource and checks every "reference" value.
func (v *Validator) validateReferences(path string, value interface{}, result *ValidationResult) {
	switch node := value.(type) {
	case map[string]interface{}:
		for key, child := range node {
			if key == "reference" {
				if ref, ok := child.(string); ok && !validReference(ref) {
					result.addError(IssueTypeValue, fmt.Sprintf("malformed reference %q", ref), path+".reference")
				}
				continue
			}
			v.validateReferences(path+"."+key, child, result)
		}
	case []interface{}:
		for i, child := range node {
			v.validateReferences(fmt.Sprintf("%s[%d]", path, i), child, result)
		}
	}
}

func validReference(ref string) bool {
	return referencePattern.MatchString(ref) || urnPattern.MatchString(ref)
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
