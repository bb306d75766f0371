// Package notify announces drafted resolution cases to the finance team
// via SendGrid. Notifications are best-effort: a delivery failure is
// logged by the caller and never blocks ingestion.
package notify

import (
	"context"
	"fmt"
	"strings"

	"vdms/internal/models"
	"vdms/internal/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailNotifier sends case-drafted emails via SendGrid
type EmailNotifier struct {
	apiKey       string
	financeEmail string
}

// NewEmailNotifier creates a notifier targeting the finance inbox
func NewEmailNotifier(apiKey, financeEmail string) *EmailNotifier {
	if financeEmail == "" {
		financeEmail = "finance@company.com"
	}
	return &EmailNotifier{
		apiKey:       apiKey,
		financeEmail: financeEmail,
	}
}

// NotifyCaseDrafted emails the finance team a summary of a freshly
// drafted case with its recommendation and approval chain.
func (n *EmailNotifier) NotifyCaseDrafted(_ context.Context, rc *models.ResolutionCase) error {
	if n.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}

	from := mail.NewEmail("Dispute Resolution System", "noreply@company.com")
	to := mail.NewEmail("Finance Team", n.financeEmail)

	subject := fmt.Sprintf("New dispute case drafted: %s", rc.Analysis.CaseID)
	body := renderCaseSummary(rc)

	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(n.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

func renderCaseSummary(rc *models.ResolutionCase) string {
	return fmt.Sprintf(`A new vendor dispute case has been drafted and is awaiting review.

Case ID: %s
Vendor: %s (%s)
Dispute Type: %s
Invoice: %s
Amount: %s

Recommended Action: %s
Confidence: %s
Required Approvals: %s

Reasoning:
%s

Draft Response:
%s`,
		rc.Analysis.CaseID,
		rc.Dispute.VendorName, rc.VendorID,
		rc.Dispute.DisputeType,
		rc.Dispute.InvoiceNumber,
		utils.FormatMoney(rc.Dispute.Amount),
		rc.Analysis.RecommendedAction,
		rc.Analysis.Confidence,
		strings.Join(rc.Analysis.RequiredApprovals, ", "),
		rc.Analysis.Reasoning,
		rc.Analysis.DraftResponse)
}
