// Package export is the gated exit for clinical content: nothing leaves the
// system as FHIR JSON unless a clinician has reviewed it. The gate runs
// before any mapping or encoding starts, so a partially built export of
// unreviewed content can never be observed.
package export

import (
	"errors"
	"fmt"
)

// ErrNotReviewed is the single policy violation the gate reports.
var ErrNotReviewed = errors.New("not reviewed by a clinician")

// Exportable is implemented by every clinical record that can leave the
// system. ExportReady reports whether review has happened; for notes that is
// status reviewed or signed, for findings and lab results a non-nil review
// timestamp.
type Exportable interface {
	ExportReady() bool
}

// BlockedError wraps the policy violation that stopped an export. It is a
// hard stop at the boundary, never a warning.
type BlockedError struct {
	Reason error
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("export blocked: %v", e.Reason)
}

func (e *BlockedError) Unwrap() error { return e.Reason }

// AssertExportable is the export gate. It must run before any FHIR mapping
// or JSON encoding begins.
func AssertExportable(record Exportable) error {
	if !record.ExportReady() {
		return &BlockedError{Reason: ErrNotReviewed}
	}
	return nil
}
