package vitals

import (
	"time"

	"github.com/mediscribe/mediscribe/internal/platform/fhir"
	"github.com/mediscribe/mediscribe/pkg/fhirmodels"
)

// MapObservations maps a vital-sign set to FHIR Observations. The LOINC
// codes and UCUM units below are interoperability constants and must be
// reproduced bit-exact. Blood pressure maps to a single panel Observation
// (55284-4) with systolic/diastolic components.
func MapObservations(v VitalSigns, subject fhir.Reference, taken time.Time, newID fhir.IDFunc) []*fhir.Observation {
	effective := fhir.FormatInstant(taken)
	var out []*fhir.Observation

	base := func(code, display string) *fhir.Observation {
		return &fhir.Observation{
			ResourceType:      "Observation",
			ID:                newID(),
			Status:            fhirmodels.ObservationStatusFinal,
			Category:          []fhir.CodeableConcept{fhir.ObservationCategoryConcept("vital-signs")},
			Code:              fhir.CodeableConcept{Coding: []fhir.Coding{fhir.LOINCCoding(code, display)}},
			Subject:           &subject,
			EffectiveDateTime: effective,
		}
	}

	if v.TemperatureC != nil {
		o := base(fhir.LOINCBodyTemperature, "Body temperature")
		o.ValueQuantity = fhir.UCUMQuantity(*v.TemperatureC, "Cel", fhir.UCUMCelsius)
		out = append(out, o)
	}
	if v.HeartRate != nil {
		o := base(fhir.LOINCHeartRate, "Heart rate")
		o.ValueQuantity = fhir.UCUMQuantity(float64(*v.HeartRate), "beats/minute", fhir.UCUMPerMinute)
		out = append(out, o)
	}
	if v.RespiratoryRate != nil {
		o := base(fhir.LOINCRespiratoryRate, "Respiratory rate")
		o.ValueQuantity = fhir.UCUMQuantity(float64(*v.RespiratoryRate), "breaths/minute", fhir.UCUMPerMinute)
		out = append(out, o)
	}
	if v.SystolicBP != nil || v.DiastolicBP != nil {
		o := base(fhir.LOINCBloodPressurePanel, "Blood pressure panel with all children optional")
		if v.SystolicBP != nil {
			o.Component = append(o.Component, fhir.ObservationComponent{
				Code:          fhir.CodeableConcept{Coding: []fhir.Coding{fhir.LOINCCoding(fhir.LOINCSystolicBP, "Systolic blood pressure")}},
				ValueQuantity: fhir.UCUMQuantity(float64(*v.SystolicBP), "mmHg", fhir.UCUMMmHg),
			})
		}
		if v.DiastolicBP != nil {
			o.Component = append(o.Component, fhir.ObservationComponent{
				Code:          fhir.CodeableConcept{Coding: []fhir.Coding{fhir.LOINCCoding(fhir.LOINCDiastolicBP, "Diastolic blood pressure")}},
				ValueQuantity: fhir.UCUMQuantity(float64(*v.DiastolicBP), "mmHg", fhir.UCUMMmHg),
			})
		}
		out = append(out, o)
	}
	if v.SpO2 != nil {
		o := base(fhir.LOINCOxygenSaturation, "Oxygen saturation in Arterial blood by Pulse oximetry")
		o.ValueQuantity = fhir.UCUMQuantity(float64(*v.SpO2), "%", fhir.UCUMPercent)
		out = append(out, o)
	}
	return out
}
