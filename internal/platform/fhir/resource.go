// Package fhir defines the typed FHIR R4 resource subset produced by the
// clinical-record mappers, plus the narrative, reference, and outgoing
// validation helpers shared by the export layer.
//
// Resources are plain records mirroring the FHIR R4 JSON shape needed for
// IPS and EU base profile compliance. Relationships are expressed as
// Reference values (urn:uuid or ResourceType/id strings), never live
// pointers; a Bundle owns its entries and individual resources carry no
// back-references.
package fhir

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Core datatypes
// ---------------------------------------------------------------------------

type Meta struct {
	VersionID   string    `json:"versionId,omitempty"`
	LastUpdated time.Time `json:"lastUpdated,omitempty"`
	Profile     []string  `json:"profile,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Identifier struct {
	Use    string           `json:"use,omitempty"`
	Type   *CodeableConcept `json:"type,omitempty"`
	System string           `json:"system,omitempty"`
	Value  string           `json:"value,omitempty"`
}

type HumanName struct {
	Use    string   `json:"use,omitempty"`
	Family string   `json:"family,omitempty"`
	Given  []string `json:"given,omitempty"`
	Prefix []string `json:"prefix,omitempty"`
}

type Period struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

type Quantity struct {
	Value  *float64 `json:"value,omitempty"`
	Unit   string   `json:"unit,omitempty"`
	System string   `json:"system,omitempty"`
	Code   string   `json:"code,omitempty"`
}

type Annotation struct {
	Time string `json:"time,omitempty"`
	Text string `json:"text"`
}

// Narrative is the human-readable text element of a resource. Div holds
// XHTML; use NewNarrative to build it with proper escaping.
type Narrative struct {
	Status string `json:"status"`
	Div    string `json:"div"`
}

// ---------------------------------------------------------------------------
// References and ids
// ---------------------------------------------------------------------------

// FormatReference creates a "ResourceType/id" reference string.
func FormatReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}

// URNReference creates a "urn:uuid:<id>" reference string, the form used for
// entries inside document bundles.
func URNReference(id string) string {
	return "urn:uuid:" + id
}

// IDFunc produces resource ids at mapping time. Resource ids are generated
// fresh for each export operation; re-exporting the same record produces new
// ids.
type IDFunc func() string

// UUIDSource returns an IDFunc backed by random UUIDs, the production source.
// Tests substitute a sequential source to pin mapper output.
func UUIDSource() IDFunc {
	return func() string { return uuid.New().String() }
}

// FormatInstant renders a timestamp in the FHIR instant form.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
