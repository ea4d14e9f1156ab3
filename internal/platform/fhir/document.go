package fhir

import "time"

// ---------------------------------------------------------------------------
// Composition
// ---------------------------------------------------------------------------

type Composition struct {
	ResourceType string                `json:"resourceType"`
	ID           string                `json:"id,omitempty"`
	Meta         *Meta                 `json:"meta,omitempty"`
	Text         *Narrative            `json:"text,omitempty"`
	Status       string                `json:"status"`
	Type         CodeableConcept       `json:"type"`
	Subject      *Reference            `json:"subject,omitempty"`
	Date         string                `json:"date"`
	Author       []Reference           `json:"author"`
	Title        string                `json:"title"`
	Attester     []CompositionAttester `json:"attester,omitempty"`
	Custodian    *Reference            `json:"custodian,omitempty"`
	Section      []CompositionSection  `json:"section,omitempty"`
}

type CompositionAttester struct {
	Mode  string     `json:"mode"`
	Time  string     `json:"time,omitempty"`
	Party *Reference `json:"party,omitempty"`
}

// CompositionSection always carries either entries or a structured
// emptyReason; the IPS profile does not allow silently omitted sections.
type CompositionSection struct {
	Title       string           `json:"title,omitempty"`
	Code        *CodeableConcept `json:"code,omitempty"`
	Text        *Narrative       `json:"text,omitempty"`
	Entry       []Reference      `json:"entry,omitempty"`
	EmptyReason *CodeableConcept `json:"emptyReason,omitempty"`
}

// NewSection builds a section, attaching the standard emptyReason when there
// are no entries.
func NewSection(title string, code *CodeableConcept, entries []Reference) CompositionSection {
	s := CompositionSection{Title: title, Code: code, Entry: entries}
	if len(entries) == 0 {
		s.EmptyReason = EmptyReasonUnavailable()
	}
	return s
}

// ---------------------------------------------------------------------------
// Bundle
// ---------------------------------------------------------------------------

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id,omitempty"`
	Meta         *Meta         `json:"meta,omitempty"`
	Identifier   *Identifier   `json:"identifier,omitempty"`
	Type         string        `json:"type"`
	Timestamp    string        `json:"timestamp,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

type BundleEntry struct {
	FullURL  string `json:"fullUrl,omitempty"`
	Resource any    `json:"resource,omitempty"`
}

// Bundle types used by the export layer.
const (
	BundleTypeDocument   = "document"
	BundleTypeCollection = "collection"
)

// NewDocumentBundle assembles a document bundle: the Composition is always
// the first entry, followed by every referenced resource, each addressed by a
// urn:uuid fullUrl. Entries must be passed with ids already assigned.
func NewDocumentBundle(id string, composition *Composition, resources []any, resourceIDs []string, timestamp time.Time) *Bundle {
	entries := make([]BundleEntry, 0, len(resources)+1)
	entries = append(entries, BundleEntry{
		FullURL:  URNReference(composition.ID),
		Resource: composition,
	})
	for i, res := range resources {
		entries = append(entries, BundleEntry{
			FullURL:  URNReference(resourceIDs[i]),
			Resource: res,
		})
	}
	return &Bundle{
		ResourceType: "Bundle",
		ID:           id,
		Meta:         &Meta{Profile: []string{ProfileIPSBundle}},
		Identifier:   &Identifier{System: "urn:ietf:rfc:3986", Value: URNReference(id)},
		Type:         BundleTypeDocument,
		Timestamp:    FormatInstant(timestamp),
		Entry:        entries,
	}
}

// NewCollectionBundle assembles a collection bundle for a single-document
// export. Resources must carry their ids; fullUrls use ResourceType/id form.
func NewCollectionBundle(id string, entries []BundleEntry, timestamp time.Time) *Bundle {
	return &Bundle{
		ResourceType: "Bundle",
		ID:           id,
		Type:         BundleTypeCollection,
		Timestamp:    FormatInstant(timestamp),
		Entry:        entries,
	}
}
