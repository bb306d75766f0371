package handlers

import (
	"net/http"

	"vdms/internal/models"

	"github.com/labstack/echo/v4"
)

// sampleEmails are canned vendor emails matching the seed vendors, used
// by the demo UI to exercise the analyze endpoint.
var sampleEmails = []models.SampleEmail{
	{
		ID:       "EMAIL-001",
		From:     "billing@techsupply.com",
		VendorID: "VENDOR-001",
		Subject:  "Invoice INV-2024-0004 - Underpayment Issue",
		Body: `Hi,

I'm writing to bring to your attention a discrepancy with invoice INV-2024-0004 for $2,000.

We submitted this invoice on December 15, 2024, with a due date of January 14, 2025. According to our contract, we qualify for a 2% early payment discount if paid within 10 days of invoice date (by December 25).

We notice that you have not made any payment yet, and we're now past the discount window. However, I'd like to review the contract terms with you because we believe there may be some confusion about which discounts apply to this specific order.

Could you please confirm the payment status and let me know when we can expect payment? Our normal payment terms are Net 30.

Best regards,
John Smith
TechSupply Co.
Phone: (555) 123-4567`,
	},
	{
		ID:       "EMAIL-002",
		From:     "accounts@officesolutions.com",
		VendorID: "VENDOR-002",
		Subject:  "URGENT: Invoice OSI-INV-521 - Payment Discrepancy",
		Body: `Hello,

I am writing regarding Invoice OSI-INV-521 dated November 1, 2024, for $4,500 in office furniture.

We received your payment of $4,500 on December 18, 2024. However, our records indicate that this shipment included $500 worth of custom chair modifications that were explicitly agreed upon in the order, and these should have been billed separately.

According to our contract, custom modifications are non-refundable and should be charged at full price. We believe you are short by $500 and request immediate payment of this amount to settle the invoice.

This is causing issues with our accounting and we need this resolved ASAP.

Thank you,
Sarah Johnson
Office Solutions Inc.`,
	},
	{
		ID:       "EMAIL-003",
		From:     "finance@logisticsexpress.com",
		VendorID: "VENDOR-003",
		Subject:  "Question about Invoice LE-2024-456 - Fuel Surcharge",
		Body: `Hi Finance Team,

Quick question about invoice LE-2024-456 for $6,000 dated December 20, 2024.

We have a fuel surcharge clause in our contract that allows us to adjust rates based on market fluctuations. Upon review of that month's fuel costs, we believe an additional $300 fuel surcharge should have been applied to this invoice.

While you did pay the full $6,000, we'd like to clarify whether this surcharge should be invoiced separately, or if it was already factored into your payment.

Can you confirm your understanding of the fuel surcharge policy?

Thanks,
Mike Chen
Logistics Express`,
	},
}

// SampleEmailsHandler serves canned vendor emails for manual testing
// @Summary List sample emails
// @Description Returns sample vendor dispute emails matching the seed vendors
// @Tags emails
// @Produce json
// @Success 200 {object} models.SampleEmailsResponse
// @Router /api/sample-emails [get]
func SampleEmailsHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.SampleEmailsResponse{
			Success: true,
			Emails:  sampleEmails,
		})
	}
}
