package models

// Step identifies a wizard stage. Steps advance strictly in order; each
// transition is validated against the current selection.
type Step string

const (
	StepService   Step = "service"
	StepDetails   Step = "details"
	StepLogistics Step = "logistics"
	StepContact   Step = "contact"
	StepQuote     Step = "quote"
)

// StepOrder lists the wizard steps in traversal order.
var StepOrder = []Step{StepService, StepDetails, StepLogistics, StepContact, StepQuote}

// Contact holds the customer details collected on the contact step. These
// never affect pricing.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// Enrichment statuses.
const (
	EnrichmentPending     = "pending"
	EnrichmentReady       = "ready"
	EnrichmentUnavailable = "unavailable"
)

// Enrichment is the optional AI-generated title and summary attached to a
// finished quote. When the generator is unreachable the fallback pair is
// served with status "unavailable"; the numeric quote never waits on it.
type Enrichment struct {
	Status       string `json:"status"`
	ProjectTitle string `json:"projectTitle,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

// QuoteSession is the wizard state stored in Redis for the lifetime of one
// quote flow. The quote is recomputed on every selection change.
type QuoteSession struct {
	SessionID  string      `json:"sessionId"`
	Step       Step        `json:"step"`
	Selection  Selection   `json:"selection"`
	Contact    Contact     `json:"contact"`
	Quote      QuoteResult `json:"quote"`
	Enrichment *Enrichment `json:"enrichment,omitempty"`
}
