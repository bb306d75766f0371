package agent

import (
	"fmt"
	"time"

	"vdms/internal/models"

	"github.com/google/uuid"
)

// CreatedByTag identifies pipeline-assembled cases in the approval dashboard
const CreatedByTag = "email-analysis-agent"

// BuildResolutionCase assembles the approvable case from an analysis.
// Pure construction, no generation and no I/O: the dispute takes the
// first extracted invoice and amount (UNKNOWN and 0 when the email named
// none) and the case starts drafted, awaiting the approval workflow.
func (a *Agent) BuildResolutionCase(email *models.Email, facts *models.ExtractedDisputeFacts, analysis *models.DisputeAnalysis) *models.ResolutionCase {
	a.logger.Info().Str("case_id", analysis.CaseID).Msg("Creating resolution case")

	now := time.Now()

	amount := 0.0
	if len(facts.Amounts) > 0 {
		amount = facts.Amounts[0]
	}

	invoiceNumber := models.InvoiceUnknown
	if len(facts.InvoiceNumbers) > 0 {
		invoiceNumber = facts.InvoiceNumbers[0]
	}

	dispute := models.Dispute{
		ID:            uuid.NewString(),
		CaseID:        analysis.CaseID,
		VendorID:      email.VendorID,
		VendorName:    facts.VendorName,
		DisputeType:   ClassifyDisputeType(facts.MainComplaint),
		Amount:        amount,
		Currency:      "USD",
		InvoiceNumber: invoiceNumber,
		Status:        models.DisputeInAnalysis,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	resolutionCase := &models.ResolutionCase{
		ID:        uuid.NewString(),
		DisputeID: dispute.ID,
		VendorID:  email.VendorID,
		Dispute:   dispute,
		Analysis:  *analysis,
		Status:    models.CaseDrafted,
		CreatedBy: CreatedByTag,
		Notes:     fmt.Sprintf("Case created from email: %s", email.Subject),
	}

	a.logger.Info().
		Str("case_id", analysis.CaseID).
		Str("status", resolutionCase.Status).
		Str("recommendation", analysis.RecommendedAction).
		Msg("Resolution case created")

	return resolutionCase
}
