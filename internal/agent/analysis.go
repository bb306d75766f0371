package agent

import (
	"context"

	"vdms/internal/models"
)

// AnalyzeDispute runs the analysis stage. When the facts name an invoice
// and the knowledge base returns a bundle for it, the bundle replaces the
// local contract terms in the prompt; vendor context and payment history
// are always the locally rendered strings. Retrieval failure is not a
// pipeline failure.
func (a *Agent) AnalyzeDispute(ctx context.Context, email *models.Email, facts *models.ExtractedDisputeFacts, vendorContext, contractContext, paymentHistory string) (*models.DisputeAnalysis, error) {
	a.logger.Info().Str("email_id", email.ID).Msg("Analyzing dispute")

	var bundle *models.KnowledgeBundle
	if a.retriever != nil && len(facts.InvoiceNumbers) > 0 {
		a.logger.Info().
			Str("invoice_number", facts.InvoiceNumbers[0]).
			Str("vendor_email", email.From).
			Msg("Querying knowledge base for contract")

		bundle = a.retriever.ContractByInvoice(ctx, facts.InvoiceNumbers[0], email.From)
		if bundle != nil {
			a.logger.Info().
				Str("contract_number", bundle.ContractNumber).
				Str("vendor_name", bundle.VendorName).
				Msg("Contract retrieved from knowledge base")
		} else {
			a.logger.Warn().
				Str("invoice_number", facts.InvoiceNumbers[0]).
				Msg("No contract in knowledge base, falling back to local data")
		}
	}

	prompt := buildAnalysisPrompt(email, facts, vendorContext, contractContext, paymentHistory, bundle)

	narrative, err := a.generator.Generate(ctx, prompt, analystSystemPrompt)
	if err != nil {
		return nil, err
	}

	a.logger.Info().Str("email_id", email.ID).Msg("Dispute analysis completed")

	recommendation := ExtractRecommendation(narrative)
	return &models.DisputeAnalysis{
		CaseID:            NewCaseID(),
		VendorID:          email.VendorID,
		InitialAnalysis:   narrative,
		Confidence:        ExtractConfidence(narrative),
		RecommendedAction: recommendation,
		Reasoning:         ExtractReasoning(narrative),
		DraftResponse:     ExtractDraftResponse(narrative),
		RequiredApprovals: RequiredApprovals(recommendation),
	}, nil
}
