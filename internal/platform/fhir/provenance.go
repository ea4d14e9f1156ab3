package fhir

import "time"

// ---------------------------------------------------------------------------
// Provenance
// ---------------------------------------------------------------------------

// Provenance records who or what produced a piece of data. Every AI-generated
// resource in an export carries one whose agent list includes a machine agent
// of type "AIs", distinct from the reviewing clinician's agent. This is the
// audit trail separating AI-authored from human-authored content and is never
// omitted for AI-sourced resources.
type Provenance struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Target       []Reference       `json:"target"`
	Recorded     string            `json:"recorded"`
	Activity     *CodeableConcept  `json:"activity,omitempty"`
	Agent        []ProvenanceAgent `json:"agent"`
}

type ProvenanceAgent struct {
	Type *CodeableConcept `json:"type,omitempty"`
	Who  Reference        `json:"who"`
}

// Provenance agent type codes (provenance-participant-type code system).
const (
	AgentTypeAI       = "AIs"
	AgentTypeVerifier = "verifier"
	AgentTypeAuthor   = "author"
)

func agentTypeConcept(code, display string) *CodeableConcept {
	return &CodeableConcept{Coding: []Coding{{
		System:  SystemProvenanceAgentType,
		Code:    code,
		Display: display,
	}}}
}

// AIAgent builds the machine agent for AI-generated content.
func AIAgent(deviceDisplay string) ProvenanceAgent {
	return ProvenanceAgent{
		Type: agentTypeConcept(AgentTypeAI, "AI System"),
		Who:  Reference{Display: deviceDisplay},
	}
}

// VerifierAgent builds the reviewing-clinician agent.
func VerifierAgent(practitionerRef Reference) ProvenanceAgent {
	return ProvenanceAgent{
		Type: agentTypeConcept(AgentTypeVerifier, "Verifier"),
		Who:  practitionerRef,
	}
}

// NewAIProvenance builds the Provenance resource for one or more AI-generated
// targets. reviewer may be nil when content has not been reviewed yet, but
// the AI agent is always present.
func NewAIProvenance(id string, targets []Reference, deviceDisplay string, reviewer *Reference, recorded time.Time) *Provenance {
	p := &Provenance{
		ResourceType: "Provenance",
		ID:           id,
		Target:       targets,
		Recorded:     FormatInstant(recorded),
		Activity: &CodeableConcept{Coding: []Coding{{
			System:  SystemV3DataOperation,
			Code:    "CREATE",
			Display: "create",
		}}},
		Agent: []ProvenanceAgent{AIAgent(deviceDisplay)},
	}
	if reviewer != nil {
		p.Agent = append(p.Agent, VerifierAgent(*reviewer))
	}
	return p
}
