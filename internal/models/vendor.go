package models

import "time"

// Vendor lifecycle statuses
const (
	VendorActive    = "active"
	VendorInactive  = "inactive"
	VendorSuspended = "suspended"
)

// Vendor represents a supplier we hold a contract with. Reference data,
// looked up by id or by normalized contact email.
type Vendor struct {
	ID            string    `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Email         string    `db:"email" json:"email"`
	ContactPerson string    `db:"contact_person" json:"contactPerson"`
	ContractID    string    `db:"contract_id" json:"contractId"`
	PaymentTerms  string    `db:"payment_terms" json:"paymentTerms"`
	Currency      string    `db:"currency" json:"currency"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// ContractTerms holds the structured terms of a vendor contract
type ContractTerms struct {
	ServiceDescription string   `json:"serviceDescription"`
	Scope              string   `json:"scope"`
	Liabilities        string   `json:"liabilities"`
	DisputeResolution  string   `json:"disputeResolution"`
	SpecialClauses     []string `json:"specialClauses"`
}

// PaymentTerms holds the payment schedule detail of a contract
type PaymentTerms struct {
	TermsName            string  `json:"termsName"` // e.g. "Net 30", "2/10 Net 30"
	StandardDays         int     `json:"standardDays"`
	EarlyPaymentDiscount float64 `json:"earlyPaymentDiscount,omitempty"`
	DiscountDays         int     `json:"discountDays,omitempty"`
	LateFeePercentage    float64 `json:"lateFeePercentage,omitempty"`
}

// Contract is the single active contract for a vendor. No contract
// history or versioning is kept.
type Contract struct {
	ID             string        `json:"id"`
	VendorID       string        `json:"vendorId"`
	ContractNumber string        `json:"contractNumber"`
	EffectiveDate  time.Time     `json:"effectiveDate"`
	ExpirationDate time.Time     `json:"expirationDate"`
	Terms          ContractTerms `json:"terms"`
	PaymentTerms   PaymentTerms  `json:"paymentTerms"`
}

// Payment record statuses
const (
	PaymentPaid    = "paid"
	PaymentPending = "pending"
	PaymentOverdue = "overdue"
	PaymentPartial = "partial"
)

// PaymentRecord is one entry of the append-only payment ledger
type PaymentRecord struct {
	InvoiceNumber string     `db:"invoice_number" json:"invoiceNumber"`
	VendorID      string     `db:"vendor_id" json:"vendorId"`
	Amount        float64    `db:"amount" json:"amount"`
	InvoiceDate   time.Time  `db:"invoice_date" json:"invoiceDate"`
	DueDate       time.Time  `db:"due_date" json:"dueDate"`
	PaidDate      *time.Time `db:"paid_date" json:"paidDate,omitempty"`
	AmountPaid    *float64   `db:"amount_paid" json:"amountPaid,omitempty"`
	Status        string     `db:"status" json:"status"`
}
