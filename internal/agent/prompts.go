package agent

import (
	"fmt"
	"strings"

	"vdms/internal/models"
)

// analystSystemPrompt frames the analysis stage. The numbered output
// format is load-bearing: the postprocessor anchors on its section
// headings.
const analystSystemPrompt = `You are a professional Finance Dispute Analyst for a large organization. Your role is to analyze vendor emails regarding payment disputes and inquiries with complete objectivity and professionalism.

## Your Responsibilities:
1. Parse vendor emails to extract key dispute information
2. Reference vendor contracts and payment history
3. Determine if disputes have merit based on contract terms
4. Generate professional, firm responses that protect company interests while maintaining vendor relationships
5. Provide clear reasoning for your recommendations

## Guidelines:
- Always cite specific contract clauses when referencing agreements
- Consider historical payment patterns
- Be fair but firm in disputes
- Suggest the most cost-effective resolution
- Maintain professional, respectful tone in all communications
- Flag high-risk situations that need escalation

## Output Format:
Provide your analysis in the following structure:
1. SUMMARY: 2-3 sentence overview of the dispute
2. KEY FACTS: Bullet points of critical information
3. CONTRACT REFERENCE: Relevant contract terms (if applicable)
4. ANALYSIS: Your detailed reasoning
5. RECOMMENDATION: Specific action (approve/reject/partial/investigate)
6. CONFIDENCE: High/Medium/Low
7. DRAFT RESPONSE: Professional email response to vendor`

const extractionSystemPrompt = "You are an expert at extracting structured information from vendor emails. Always respond with valid JSON only."

func buildExtractionPrompt(email *models.Email) string {
	return fmt.Sprintf(`Extract dispute information from this email:

Subject: %s
Body: %s

Return a JSON object with:
- vendorName: name of the vendor
- vendorEmail: email address of the vendor
- invoiceNumbers: array of invoice numbers mentioned
- amounts: array of dollar amounts in dispute
- mainComplaint: 2-3 sentence summary of the complaint
- evidenceProvided: array of evidence types mentioned
- tone: professional | frustrated | hostile | neutral`, email.Subject, email.Body)
}

// renderKnowledgeBundle renders retrieved contract facts as an analysis
// prompt section. When present this section replaces the local contract
// terms; vendor context and payment history stay local either way.
func renderKnowledgeBundle(b *models.KnowledgeBundle) string {
	clauses := make([]string, 0, len(b.SpecialClauses))
	for _, c := range b.SpecialClauses {
		clauses = append(clauses, "- "+c)
	}

	return fmt.Sprintf(`KNOWLEDGE BASE CONTRACT INTELLIGENCE:
Contract Number: %s
Vendor: %s
Effective: %s to %s

Payment Terms: %s
Service Description: %s
Dispute Resolution: %s

Special Clauses:
%s

Full Context:
%s`,
		b.ContractNumber, b.VendorName, b.EffectiveDate, b.ExpirationDate,
		b.PaymentTerms, b.ServiceDescription, b.DisputeResolution,
		strings.Join(clauses, "\n"), b.RawContext)
}

func buildAnalysisPrompt(email *models.Email, facts *models.ExtractedDisputeFacts, vendorContext, contractContext, paymentHistory string, bundle *models.KnowledgeBundle) string {
	amounts := make([]string, 0, len(facts.Amounts))
	for _, a := range facts.Amounts {
		amounts = append(amounts, fmt.Sprintf("%g", a))
	}

	contractSection := fmt.Sprintf("CONTRACT TERMS (Local Data):\n%s", contractContext)
	if bundle != nil {
		contractSection = renderKnowledgeBundle(bundle)
	}

	return fmt.Sprintf(`You are analyzing a vendor dispute. Here is the context:

VENDOR EMAIL:
From: %s
Subject: %s
Body: %s

PARSED DISPUTE INFO:
- Vendor: %s
- Invoice(s): %s
- Amount(s) in Dispute: $%s
- Main Complaint: %s
- Tone: %s

VENDOR CONTEXT:
%s

%s

PAYMENT HISTORY:
%s

Provide your analysis with:
1. SUMMARY: 2-3 sentence overview
2. KEY FACTS: Bullet points of critical information
3. CONTRACT REFERENCE: Relevant contract terms
4. ANALYSIS: Detailed reasoning
5. RECOMMENDATION: approve_payment | reject_claim | partial_payment | further_investigation
6. CONFIDENCE: high | medium | low
7. DRAFT RESPONSE: Professional email response to vendor addressing their concern`,
		email.From, email.Subject, email.Body,
		facts.VendorName,
		strings.Join(facts.InvoiceNumbers, ", "),
		strings.Join(amounts, ", $"),
		facts.MainComplaint,
		facts.Tone,
		vendorContext,
		contractSection,
		paymentHistory)
}
