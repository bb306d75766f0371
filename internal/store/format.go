package store

import (
	"fmt"
	"strings"

	"vdms/internal/models"
	"vdms/internal/utils"
)

// FormatVendorContext renders a vendor record into prompt-ready text
func FormatVendorContext(vendor *models.Vendor) string {
	return fmt.Sprintf(`
Vendor Name: %s
Contact Email: %s
Primary Contact: %s
Status: %s
Payment Terms: %s
`, vendor.Name, vendor.Email, vendor.ContactPerson, vendor.Status, vendor.PaymentTerms)
}

// FormatContractContext renders a contract into prompt-ready text. Special
// clauses keep their original order and wording.
func FormatContractContext(contract *models.Contract) string {
	var clauses strings.Builder
	for i, clause := range contract.Terms.SpecialClauses {
		clauses.WriteString(fmt.Sprintf("  %d. %s\n", i+1, clause))
	}

	discount := "None"
	if contract.PaymentTerms.EarlyPaymentDiscount > 0 {
		discount = fmt.Sprintf("%g%% if paid within %d days",
			contract.PaymentTerms.EarlyPaymentDiscount, contract.PaymentTerms.DiscountDays)
	}

	lateFee := "None"
	if contract.PaymentTerms.LateFeePercentage > 0 {
		lateFee = fmt.Sprintf("%g%%", contract.PaymentTerms.LateFeePercentage)
	}

	return fmt.Sprintf(`
Contract Number: %s
Effective Date: %s
Expiration Date: %s

Service Description: %s
Scope: %s

Payment Terms: %s
- Standard Payment Days: %d
- Early Payment Discount: %s
- Late Fee: %s

Vendor Liabilities: %s

Dispute Resolution Process: %s

Special Clauses:
%s`,
		contract.ContractNumber,
		contract.EffectiveDate.Format("2006-01-02"),
		contract.ExpirationDate.Format("2006-01-02"),
		contract.Terms.ServiceDescription,
		contract.Terms.Scope,
		contract.PaymentTerms.TermsName,
		contract.PaymentTerms.StandardDays,
		discount,
		lateFee,
		contract.Terms.Liabilities,
		contract.Terms.DisputeResolution,
		clauses.String())
}

// FormatPaymentHistory renders a vendor's payment ledger into prompt-ready text
func FormatPaymentHistory(vendorID string, history []models.PaymentRecord) string {
	records := make([]string, 0, len(history))
	for _, p := range history {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("\nInvoice: %s\n", p.InvoiceNumber))
		sb.WriteString(fmt.Sprintf("Amount: %s\n", utils.FormatMoney(p.Amount)))
		sb.WriteString(fmt.Sprintf("Invoice Date: %s\n", p.InvoiceDate.Format("2006-01-02")))
		sb.WriteString(fmt.Sprintf("Due Date: %s\n", p.DueDate.Format("2006-01-02")))
		sb.WriteString(fmt.Sprintf("Status: %s\n", p.Status))
		if p.PaidDate != nil {
			sb.WriteString(fmt.Sprintf("Paid Date: %s\n", p.PaidDate.Format("2006-01-02")))
		}
		if p.AmountPaid != nil {
			sb.WriteString(fmt.Sprintf("Amount Paid: %s\n", utils.FormatMoney(*p.AmountPaid)))
		}
		records = append(records, sb.String())
	}

	return fmt.Sprintf("Payment History for Vendor %s:\n\n%s", vendorID, strings.Join(records, "\n---\n"))
}
