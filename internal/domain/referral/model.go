// Package referral holds clinician-authored referrals. Referrals are human
// input, not model output: they carry no AI provenance and skip the
// forbidden-phrase scan.
package referral

import (
	"time"

	"github.com/google/uuid"
)

// Referral maps to the referral table.
type Referral struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	Specialty  string    `db:"specialty" json:"specialty"`
	Reason     string    `db:"reason" json:"reason"`
	Priority   string    `db:"priority" json:"priority,omitempty"`
	Notes      string    `db:"notes" json:"notes,omitempty"`
	Status     string    `db:"status" json:"status"`
	AuthoredBy string    `db:"authored_by" json:"authored_by"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
