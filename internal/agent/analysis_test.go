package agent

import (
	"context"
	"testing"

	"vdms/internal/knowledge"
	"vdms/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const analysisNarrative = `1. SUMMARY: TechSupply Co claims invoice INV-2024-0004 was underpaid.
2. KEY FACTS:
- Invoice total $2,000, payment record shows pending status
3. CONTRACT REFERENCE: TSC-2024-001, Net 30
4. ANALYSIS: The payment record shows INV-2024-0004 is still pending, so no underpayment occurred yet.
5. RECOMMENDATION: approve_payment
6. CONFIDENCE: high confidence
7. DRAFT RESPONSE:
Dear TechSupply Co,

Payment for INV-2024-0004 is scheduled per Net 30 terms.`

func testFacts() *models.ExtractedDisputeFacts {
	return &models.ExtractedDisputeFacts{
		VendorName:     "TechSupply Co",
		VendorEmail:    "billing@techsupply.com",
		InvoiceNumbers: []string{"INV-2024-0004"},
		Amounts:        []float64{2000},
		MainComplaint:  "Vendor claims the invoice was underpaid.",
		Tone:           models.ToneProfessional,
	}
}

func TestAnalyzeDispute_LocalContractData(t *testing.T) {
	gen := &fakeGenerator{responses: []string{analysisNarrative}}
	a := newTestAgent(gen)

	analysis, err := a.AnalyzeDispute(context.Background(), testEmail(), testFacts(),
		"Vendor: TechSupply Co", "Contract Number: TSC-2024-001", "Invoice: INV-2024-0004")

	require.NoError(t, err)
	assert.Equal(t, models.ActionApprovePayment, analysis.RecommendedAction)
	assert.Equal(t, models.ConfidenceHigh, analysis.Confidence)
	assert.Equal(t, []string{"Finance Manager", "Department Head"}, analysis.RequiredApprovals)
	assert.Equal(t, analysisNarrative, analysis.InitialAnalysis)
	assert.Contains(t, analysis.Reasoning, "still pending")
	assert.Contains(t, analysis.DraftResponse, "Dear TechSupply Co")
	assert.Equal(t, "VENDOR-001", analysis.VendorID)
	assert.Regexp(t, `^CASE-\d+-[0-9A-Z]{6}$`, analysis.CaseID)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "CONTRACT TERMS (Local Data):\nContract Number: TSC-2024-001")
	assert.Contains(t, gen.prompts[0], "VENDOR CONTEXT:\nVendor: TechSupply Co")
	assert.Contains(t, gen.prompts[0], "PAYMENT HISTORY:\nInvoice: INV-2024-0004")
	assert.Contains(t, gen.systemPrompts[0], "Finance Dispute Analyst")
}

func TestAnalyzeDispute_KnowledgeBundleReplacesLocalContract(t *testing.T) {
	searcher := &scriptedSearcher{
		result: &knowledge.SearchResult{
			Answer: `Contract Number: TSC-2024-001
Vendor Name: TechSupply Co
Payment Terms: Net 30
Service Description: IT equipment supply
Dispute Resolution: Escalate after 5 business days`,
			Sources:      []knowledge.Source{{Content: "kb snippet", Score: 0.9}},
			TotalResults: 1,
		},
	}
	retriever := knowledge.NewRetriever(searcher, 5, zerolog.Nop())
	gen := &fakeGenerator{responses: []string{analysisNarrative}}
	a := New(gen, retriever, zerolog.Nop())

	_, err := a.AnalyzeDispute(context.Background(), testEmail(), testFacts(),
		"Vendor: TechSupply Co", "LOCAL-CONTRACT-TEXT", "PAYMENT-HISTORY-TEXT")

	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)

	// The bundle supersedes only the local contract section.
	assert.Contains(t, gen.prompts[0], "KNOWLEDGE BASE CONTRACT INTELLIGENCE:")
	assert.Contains(t, gen.prompts[0], "Payment Terms: Net 30")
	assert.Contains(t, gen.prompts[0], "kb snippet")
	assert.NotContains(t, gen.prompts[0], "LOCAL-CONTRACT-TEXT")
	assert.Contains(t, gen.prompts[0], "Vendor: TechSupply Co")
	assert.Contains(t, gen.prompts[0], "PAYMENT-HISTORY-TEXT")
}

func TestAnalyzeDispute_RetrievalFailureFallsBackToLocal(t *testing.T) {
	searcher := &scriptedSearcher{result: &knowledge.SearchResult{TotalResults: 0}}
	retriever := knowledge.NewRetriever(searcher, 5, zerolog.Nop())
	gen := &fakeGenerator{responses: []string{analysisNarrative}}
	a := New(gen, retriever, zerolog.Nop())

	_, err := a.AnalyzeDispute(context.Background(), testEmail(), testFacts(),
		"vendor", "LOCAL-CONTRACT-TEXT", "history")

	require.NoError(t, err)
	assert.Contains(t, gen.prompts[0], "CONTRACT TERMS (Local Data):\nLOCAL-CONTRACT-TEXT")
}

func TestAnalyzeDispute_NoInvoiceSkipsRetrieval(t *testing.T) {
	searcher := &scriptedSearcher{result: &knowledge.SearchResult{Answer: "x", TotalResults: 1}}
	retriever := knowledge.NewRetriever(searcher, 5, zerolog.Nop())
	gen := &fakeGenerator{responses: []string{analysisNarrative}}
	a := New(gen, retriever, zerolog.Nop())

	facts := testFacts()
	facts.InvoiceNumbers = nil

	_, err := a.AnalyzeDispute(context.Background(), testEmail(), facts,
		"vendor", "LOCAL-CONTRACT-TEXT", "history")

	require.NoError(t, err)
	assert.Equal(t, 0, searcher.calls)
	assert.Contains(t, gen.prompts[0], "LOCAL-CONTRACT-TEXT")
}

type scriptedSearcher struct {
	result *knowledge.SearchResult
	calls  int
}

func (s *scriptedSearcher) Search(_ context.Context, _ string, _ int) (*knowledge.SearchResult, error) {
	s.calls++
	return s.result, nil
}
