package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// AnalyzeRequest represents the request body for the analyze endpoint
// @Description Dispute analysis request payload
type AnalyzeRequest struct {
	VendorID string `json:"vendorId" example:"VENDOR-001"` // Vendor the email is attributed to
	Subject  string `json:"subject" example:"Unpaid invoice INV-2024-0004"`
	Body     string `json:"body"` // Raw email body text
}

// AnalyzeSummary carries the typed analysis fields of a resolution case
// @Description Typed fields derived from the dispute analysis
type AnalyzeSummary struct {
	Recommendation    string   `json:"recommendation" example:"approve_payment"`
	Confidence        string   `json:"confidence" example:"high"`
	Reasoning         string   `json:"reasoning"`
	RequiredApprovals []string `json:"requiredApprovals"`
}

// AnalyzeResponse represents the response from the analyze endpoint
// @Description Dispute analysis response payload
type AnalyzeResponse struct {
	Success       bool            `json:"success" example:"true"`
	CaseID        string          `json:"caseId,omitempty" example:"CASE-1736954803000-A1B2C3"`
	VendorName    string          `json:"vendorName,omitempty" example:"TechSupply Co."`
	Analysis      *AnalyzeSummary `json:"analysis,omitempty"`
	DraftResponse string          `json:"draftResponse,omitempty"`
	FullAnalysis  string          `json:"fullAnalysis,omitempty"`
	CaseData      *ResolutionCase `json:"caseData,omitempty"`
	Error         string          `json:"error,omitempty" example:""`
}

// VendorSummary is the trimmed vendor shape returned by the vendor list endpoint
// @Description Vendor list entry
type VendorSummary struct {
	ID            string `json:"id" example:"VENDOR-001"`
	Name          string `json:"name" example:"TechSupply Co."`
	Email         string `json:"email" example:"billing@techsupply.com"`
	ContactPerson string `json:"contactPerson" example:"John Smith"`
}

// VendorsResponse represents the response from the vendors endpoint
// @Description Vendor list response payload
type VendorsResponse struct {
	Success bool            `json:"success" example:"true"`
	Vendors []VendorSummary `json:"vendors"`
	Error   string          `json:"error,omitempty" example:""`
}

// SampleEmail is one canned vendor email served for manual testing
// @Description Sample vendor email
type SampleEmail struct {
	ID       string `json:"id" example:"EMAIL-001"`
	From     string `json:"from" example:"billing@techsupply.com"`
	VendorID string `json:"vendorId" example:"VENDOR-001"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

// SampleEmailsResponse represents the response from the sample-emails endpoint
// @Description Sample email list response payload
type SampleEmailsResponse struct {
	Success bool          `json:"success" example:"true"`
	Emails  []SampleEmail `json:"emails"`
	Error   string        `json:"error,omitempty" example:""`
}

// KnowledgeQueryRequest represents an ad-hoc knowledge base question
// @Description Diagnostic knowledge base query payload
type KnowledgeQueryRequest struct {
	InvoiceNumber string `json:"invoiceNumber" example:"INV-2024-0004"`
	Question      string `json:"question" example:"What are the late fee terms?"`
}

// KnowledgeQueryResponse represents the answer to an ad-hoc knowledge query
// @Description Diagnostic knowledge base query response
type KnowledgeQueryResponse struct {
	Success bool   `json:"success" example:"true"`
	Answer  string `json:"answer,omitempty"`
	Error   string `json:"error,omitempty" example:""`
}

// CasesResponse represents the response from the case list endpoint
// @Description Persisted case list response payload
type CasesResponse struct {
	Success bool     `json:"success" example:"true"`
	CaseIDs []string `json:"caseIds"`
	Error   string   `json:"error,omitempty" example:""`
}
