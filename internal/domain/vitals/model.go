// Package vitals maps recorded vital-sign sets to FHIR Observations with
// fixed LOINC codes and UCUM units.
package vitals

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VitalSigns is one set of measurements. All fields are optional; absent
// measurements simply produce no Observation. Values are numeric and are
// exempt from forbidden-phrase scanning.
type VitalSigns struct {
	TemperatureC    *float64 `db:"temperature_c" json:"temperature_c,omitempty"`
	HeartRate       *int     `db:"heart_rate" json:"heart_rate,omitempty"`
	RespiratoryRate *int     `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	SystolicBP      *int     `db:"systolic_bp" json:"systolic_bp,omitempty"`
	DiastolicBP     *int     `db:"diastolic_bp" json:"diastolic_bp,omitempty"`
	SpO2            *int     `db:"spo2" json:"spo2,omitempty"`
}

// Empty returns true when no measurement is present.
func (v VitalSigns) Empty() bool {
	return v.TemperatureC == nil && v.HeartRate == nil && v.RespiratoryRate == nil &&
		v.SystolicBP == nil && v.DiastolicBP == nil && v.SpO2 == nil
}

// Validate applies physiological plausibility bounds. Out-of-range values are
// data-entry errors, not safety violations.
func (v VitalSigns) Validate() error {
	if v.TemperatureC != nil && (*v.TemperatureC < 25 || *v.TemperatureC > 45) {
		return fmt.Errorf("temperature_c out of range: %.1f", *v.TemperatureC)
	}
	if v.HeartRate != nil && (*v.HeartRate < 0 || *v.HeartRate > 400) {
		return fmt.Errorf("heart_rate out of range: %d", *v.HeartRate)
	}
	if v.RespiratoryRate != nil && (*v.RespiratoryRate < 0 || *v.RespiratoryRate > 120) {
		return fmt.Errorf("respiratory_rate out of range: %d", *v.RespiratoryRate)
	}
	if v.SystolicBP != nil && (*v.SystolicBP < 0 || *v.SystolicBP > 350) {
		return fmt.Errorf("systolic_bp out of range: %d", *v.SystolicBP)
	}
	if v.DiastolicBP != nil && (*v.DiastolicBP < 0 || *v.DiastolicBP > 250) {
		return fmt.Errorf("diastolic_bp out of range: %d", *v.DiastolicBP)
	}
	if v.SpO2 != nil && (*v.SpO2 < 0 || *v.SpO2 > 100) {
		return fmt.Errorf("spo2 out of range: %d", *v.SpO2)
	}
	return nil
}

// Record maps to the vitals_record table.
type Record struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	TakenAt   time.Time `db:"taken_at" json:"taken_at"`
	VitalSigns
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
