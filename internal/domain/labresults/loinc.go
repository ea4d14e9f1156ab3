package labresults

import (
	"strings"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
)

// analyte is one registered LOINC analyte code with its canonical display.
type analyte struct {
	Code    string
	Display string
}

// analyteCodes maps common test names, lowercased, to registered LOINC
// codes. Names outside this table fall back to an uncoded text concept; the
// lookup never guesses.
var analyteCodes = map[string]analyte{
	"hemoglobin":        {"718-7", "Hemoglobin [Mass/volume] in Blood"},
	"hematocrit":        {"4544-3", "Hematocrit [Volume Fraction] of Blood by Automated count"},
	"white blood cells": {"6690-2", "Leukocytes [#/volume] in Blood by Automated count"},
	"wbc":               {"6690-2", "Leukocytes [#/volume] in Blood by Automated count"},
	"platelets":         {"777-3", "Platelets [#/volume] in Blood by Automated count"},
	"glucose":           {"2345-7", "Glucose [Mass/volume] in Serum or Plasma"},
	"creatinine":        {"2160-0", "Creatinine [Mass/volume] in Serum or Plasma"},
	"sodium":            {"2951-2", "Sodium [Moles/volume] in Serum or Plasma"},
	"potassium":         {"2823-3", "Potassium [Moles/volume] in Serum or Plasma"},
	"chloride":          {"2075-0", "Chloride [Moles/volume] in Serum or Plasma"},
	"urea nitrogen":     {"3094-0", "Urea nitrogen [Mass/volume] in Serum or Plasma"},
	"bun":               {"3094-0", "Urea nitrogen [Mass/volume] in Serum or Plasma"},
	"alt":               {"1742-6", "Alanine aminotransferase [Enzymatic activity/volume] in Serum or Plasma"},
	"ast":               {"1920-8", "Aspartate aminotransferase [Enzymatic activity/volume] in Serum or Plasma"},
	"total bilirubin":   {"1975-2", "Bilirubin.total [Mass/volume] in Serum or Plasma"},
	"albumin":           {"1751-7", "Albumin [Mass/volume] in Serum or Plasma"},
	"calcium":           {"17861-6", "Calcium [Mass/volume] in Serum or Plasma"},
	"tsh":               {"3016-3", "Thyrotropin [Units/volume] in Serum or Plasma"},
	"hba1c":             {"4548-4", "Hemoglobin A1c/Hemoglobin.total in Blood"},
	"ldl cholesterol":   {"13457-7", "Cholesterol in LDL [Mass/volume] in Serum or Plasma by calculation"},
	"hdl cholesterol":   {"2085-9", "Cholesterol in HDL [Mass/volume] in Serum or Plasma"},
	"total cholesterol": {"2093-3", "Cholesterol [Mass/volume] in Serum or Plasma"},
	"triglycerides":     {"2571-8", "Triglyceride [Mass/volume] in Serum or Plasma"},
	"crp":               {"1988-5", "C reactive protein [Mass/volume] in Serum or Plasma"},
}

// AnalyteConcept returns the CodeableConcept for a test name: a LOINC coding
// when the name is registered, otherwise a text-only concept carrying the
// reported name unchanged.
func AnalyteConcept(testName string) fhir.CodeableConcept {
	key := strings.ToLower(strings.TrimSpace(testName))
	if a, ok := analyteCodes[key]; ok {
		return fhir.CodeableConcept{
			Coding: []fhir.Coding{fhir.LOINCCoding(a.Code, a.Display)},
			Text:   testName,
		}
	}
	return fhir.CodeableConcept{Text: testName}
}
