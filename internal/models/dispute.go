package models

import "time"

// Confidence levels derived from an analysis narrative
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Recommended actions for a dispute
const (
	ActionApprovePayment       = "approve_payment"
	ActionRejectClaim          = "reject_claim"
	ActionPartialPayment       = "partial_payment"
	ActionFurtherInvestigation = "further_investigation"
)

// Dispute types classified from the extracted complaint
const (
	DisputeUnderpayment       = "underpayment"
	DisputeLatePayment        = "late_payment"
	DisputeInvoiceDiscrepancy = "invoice_discrepancy"
	DisputeContractViolation  = "contract_violation"
	DisputeOther              = "other"
)

// Dispute lifecycle statuses
const (
	DisputeOpen            = "open"
	DisputeInAnalysis      = "in_analysis"
	DisputePendingApproval = "pending_approval"
	DisputeApproved        = "approved"
	DisputeRejected        = "rejected"
	DisputeResolved        = "resolved"
)

// Resolution case lifecycle statuses
const (
	CaseDrafted         = "drafted"
	CasePendingApproval = "pending_approval"
	CaseApproved        = "approved"
	CaseSent            = "sent"
	CaseArchived        = "archived"
)

// InvoiceUnknown is the sentinel invoice number when the email named none
const InvoiceUnknown = "UNKNOWN"

// DisputeAnalysis is the structured outcome of one analysis run. The case
// id is generated exactly once, when the analysis is produced.
type DisputeAnalysis struct {
	CaseID            string   `json:"caseId"`
	VendorID          string   `json:"vendorId"`
	InitialAnalysis   string   `json:"initialAnalysis"`
	Confidence        string   `json:"confidence"`
	RecommendedAction string   `json:"recommendedAction"`
	Reasoning         string   `json:"reasoning"`
	DraftResponse     string   `json:"draftResponse"`
	RequiredApprovals []string `json:"requiredApprovals"`
}

// Dispute tracks a vendor's formal disagreement over an invoice or payment
type Dispute struct {
	ID            string    `json:"id"`
	CaseID        string    `json:"caseId"`
	VendorID      string    `json:"vendorId"`
	VendorName    string    `json:"vendorName"`
	DisputeType   string    `json:"disputeType"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	InvoiceNumber string    `json:"invoiceNumber"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ResolutionCase is the approvable work product for one dispute: the
// analysis, the draft reply and the approval chain. Approver fields are
// filled by the external approval workflow.
type ResolutionCase struct {
	ID         string          `json:"id"`
	DisputeID  string          `json:"disputeId"`
	VendorID   string          `json:"vendorId"`
	Dispute    Dispute         `json:"dispute"`
	Analysis   DisputeAnalysis `json:"analysis"`
	Status     string          `json:"status"`
	CreatedBy  string          `json:"createdBy"`
	Notes      string          `json:"notes,omitempty"`
	ApprovedBy string          `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time      `json:"approvedAt,omitempty"`
	SentAt     *time.Time      `json:"sentAt,omitempty"`
}
