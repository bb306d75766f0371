package models

import "time"

// Email is an inbound vendor message after the sender has been resolved
// to a known vendor. Immutable once constructed.
type Email struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	ReceivedAt time.Time `json:"receivedAt"`
	VendorID   string    `json:"vendorId"`
}

// Email tones as classified by the extraction stage
const (
	ToneProfessional = "professional"
	ToneFrustrated   = "frustrated"
	ToneHostile      = "hostile"
	ToneNeutral      = "neutral"
)

// ExtractedDisputeFacts holds the typed facts pulled out of a raw vendor
// email by the extraction stage. Fields reflect what the email *says*,
// which may disagree with the vendor record; reconciliation is a human step.
type ExtractedDisputeFacts struct {
	VendorName       string    `json:"vendorName"`
	VendorEmail      string    `json:"vendorEmail"`
	InvoiceNumbers   []string  `json:"invoiceNumbers"`
	Amounts          []float64 `json:"amounts"`
	MainComplaint    string    `json:"mainComplaint"`
	EvidenceProvided []string  `json:"evidenceProvided"`
	Tone             string    `json:"tone"`
}

// KnowledgeBundle is the contract-fact snippet retrieved from the
// knowledge base. Advisory context only; field values are best-effort
// extractions and may carry "Not specified" placeholders.
type KnowledgeBundle struct {
	ContractNumber     string   `json:"contractNumber"`
	VendorName         string   `json:"vendorName"`
	PaymentTerms       string   `json:"paymentTerms"`
	ServiceDescription string   `json:"serviceDescription"`
	DisputeResolution  string   `json:"disputeResolution"`
	SpecialClauses     []string `json:"specialClauses"`
	EffectiveDate      string   `json:"effectiveDate"`
	ExpirationDate     string   `json:"expirationDate"`
	RawContext         string   `json:"rawContext"`
}
