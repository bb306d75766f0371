package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatContractContext_PreservesClauses(t *testing.T) {
	s := NewSeedStore()
	contract, err := s.ContractByVendorID(context.Background(), "VENDOR-003")
	require.NoError(t, err)

	formatted := FormatContractContext(contract)

	// Every special clause must appear verbatim and in original order.
	lastIndex := -1
	for _, clause := range contract.Terms.SpecialClauses {
		idx := strings.Index(formatted, clause)
		assert.Greaterf(t, idx, lastIndex, "clause %q out of order or missing", clause)
		lastIndex = idx
	}

	assert.Contains(t, formatted, "Contract Number: LE-2024-001")
	assert.Contains(t, formatted, "Payment Terms: 2/10 Net 30")
	assert.Contains(t, formatted, "Late Fee: 2%")
}

func TestFormatContractContext_NoDiscountOrLateFee(t *testing.T) {
	s := NewSeedStore()
	contract, err := s.ContractByVendorID(context.Background(), "VENDOR-002")
	require.NoError(t, err)
	contract.PaymentTerms.EarlyPaymentDiscount = 0
	contract.PaymentTerms.LateFeePercentage = 0

	formatted := FormatContractContext(contract)

	assert.Contains(t, formatted, "Early Payment Discount: None")
	assert.Contains(t, formatted, "Late Fee: None")
}

func TestFormatVendorContext(t *testing.T) {
	s := NewSeedStore()
	vendor, err := s.VendorByID(context.Background(), "VENDOR-001")
	require.NoError(t, err)

	formatted := FormatVendorContext(vendor)

	assert.Contains(t, formatted, "Vendor Name: TechSupply Co.")
	assert.Contains(t, formatted, "Contact Email: billing@techsupply.com")
	assert.Contains(t, formatted, "Payment Terms: Net 30")
	assert.Contains(t, formatted, "Status: active")
}

func TestFormatPaymentHistory(t *testing.T) {
	s := NewSeedStore()
	history, err := s.PaymentHistory(context.Background(), "VENDOR-001")
	require.NoError(t, err)

	formatted := FormatPaymentHistory("VENDOR-001", history)

	assert.Contains(t, formatted, "Payment History for Vendor VENDOR-001")
	assert.Contains(t, formatted, "Invoice: INV-2024-0004")
	assert.Contains(t, formatted, "Amount: $2,000.00")
	assert.Contains(t, formatted, "Status: pending")
	// Paid invoices carry the paid date line.
	assert.Contains(t, formatted, "Paid Date: 2024-12-25")
}
