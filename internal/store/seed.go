package store

import (
	"context"
	"strings"
	"time"

	"vdms/internal/models"
)

// SeedStore serves the built-in demo reference data from memory. It backs
// local development and tests when no database is configured.
type SeedStore struct {
	vendors   []models.Vendor
	contracts []models.Contract
	payments  []models.PaymentRecord
}

// NewSeedStore returns a store preloaded with the demo vendors, their
// contracts and payment ledger.
func NewSeedStore() *SeedStore {
	return &SeedStore{
		vendors:   seedVendors(),
		contracts: seedContracts(),
		payments:  seedPayments(),
	}
}

// Vendors returns all seeded vendors
func (s *SeedStore) Vendors(_ context.Context) ([]models.Vendor, error) {
	out := make([]models.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out, nil
}

// VendorByID looks up a vendor by identifier
func (s *SeedStore) VendorByID(_ context.Context, vendorID string) (*models.Vendor, error) {
	for i := range s.vendors {
		if s.vendors[i].ID == vendorID {
			vendor := s.vendors[i]
			return &vendor, nil
		}
	}
	return nil, ErrVendorNotFound
}

// VendorByEmail looks up a vendor by contact address, case-insensitive
func (s *SeedStore) VendorByEmail(_ context.Context, email string) (*models.Vendor, error) {
	normalized := strings.ToLower(email)
	for i := range s.vendors {
		if strings.ToLower(s.vendors[i].Email) == normalized {
			vendor := s.vendors[i]
			return &vendor, nil
		}
	}
	return nil, ErrVendorNotFound
}

// ContractByVendorID returns the vendor's active contract
func (s *SeedStore) ContractByVendorID(_ context.Context, vendorID string) (*models.Contract, error) {
	for i := range s.contracts {
		if s.contracts[i].VendorID == vendorID {
			contract := s.contracts[i]
			return &contract, nil
		}
	}
	return nil, ErrContractNotFound
}

// PaymentHistory returns the vendor's ledger entries in seeded order
func (s *SeedStore) PaymentHistory(_ context.Context, vendorID string) ([]models.PaymentRecord, error) {
	var history []models.PaymentRecord
	for _, p := range s.payments {
		if p.VendorID == vendorID {
			history = append(history, p)
		}
	}
	return history, nil
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func datePtr(value string) *time.Time {
	t := date(value)
	return &t
}

func floatPtr(v float64) *float64 { return &v }

func seedVendors() []models.Vendor {
	return []models.Vendor{
		{
			ID:            "VENDOR-001",
			Name:          "TechSupply Co.",
			Email:         "billing@techsupply.com",
			ContactPerson: "John Smith",
			ContractID:    "CONTRACT-2024-001",
			PaymentTerms:  "Net 30",
			Currency:      "USD",
			Status:        models.VendorActive,
			CreatedAt:     date("2024-01-15"),
		},
		{
			ID:            "VENDOR-002",
			Name:          "Office Solutions Inc.",
			Email:         "accounts@officesolutions.com",
			ContactPerson: "Sarah Johnson",
			ContractID:    "CONTRACT-2024-002",
			PaymentTerms:  "Net 45",
			Currency:      "USD",
			Status:        models.VendorActive,
			CreatedAt:     date("2024-03-10"),
		},
		{
			ID:            "VENDOR-003",
			Name:          "Logistics Express",
			Email:         "finance@logisticsexpress.com",
			ContactPerson: "Mike Chen",
			ContractID:    "CONTRACT-2024-003",
			PaymentTerms:  "2/10 Net 30",
			Currency:      "USD",
			Status:        models.VendorActive,
			CreatedAt:     date("2024-02-20"),
		},
	}
}

func seedContracts() []models.Contract {
	return []models.Contract{
		{
			ID:             "CONTRACT-2024-001",
			VendorID:       "VENDOR-001",
			ContractNumber: "TSC-2024-001",
			EffectiveDate:  date("2024-01-01"),
			ExpirationDate: date("2025-12-31"),
			Terms: models.ContractTerms{
				ServiceDescription: "Supply of IT equipment and accessories",
				Scope:              "Computers, monitors, keyboards, mice, networking equipment",
				Liabilities:        "Vendor responsible for defective goods within 30 days",
				DisputeResolution:  "Initial contact with Account Manager, escalate to Legal if unresolved after 5 business days",
				SpecialClauses: []string{
					"Early Payment Discount: 2% off if paid within 10 days",
					"Volume discount applies: 5% off for orders over $10,000",
					"Returns must be approved within 14 days of receipt",
				},
			},
			PaymentTerms: models.PaymentTerms{
				TermsName:            "Net 30",
				StandardDays:         30,
				EarlyPaymentDiscount: 2,
				DiscountDays:         10,
				LateFeePercentage:    1.5,
			},
		},
		{
			ID:             "CONTRACT-2024-002",
			VendorID:       "VENDOR-002",
			ContractNumber: "OSI-2024-001",
			EffectiveDate:  date("2024-01-01"),
			ExpirationDate: date("2025-12-31"),
			Terms: models.ContractTerms{
				ServiceDescription: "Office furniture and supplies",
				Scope:              "Desks, chairs, filing cabinets, printer paper, office supplies",
				Liabilities:        "Vendor responsible for damaged goods upon delivery",
				DisputeResolution:  "Email disputes to disputes@officesolutions.com, response within 3 business days",
				SpecialClauses: []string{
					"Free shipping on orders over $5,000",
					"Custom furniture orders are non-refundable",
					"Bulk supply agreements have quarterly pricing adjustments",
				},
			},
			PaymentTerms: models.PaymentTerms{
				TermsName:            "Net 45",
				StandardDays:         45,
				EarlyPaymentDiscount: 1,
				DiscountDays:         15,
			},
		},
		{
			ID:             "CONTRACT-2024-003",
			VendorID:       "VENDOR-003",
			ContractNumber: "LE-2024-001",
			EffectiveDate:  date("2024-01-01"),
			ExpirationDate: date("2025-12-31"),
			Terms: models.ContractTerms{
				ServiceDescription: "Shipping and logistics services",
				Scope:              "Domestic and international shipping, warehousing, inventory management",
				Liabilities:        "Liability capped at invoice value; insurance available at additional cost",
				DisputeResolution:  "Escalate to Finance Manager for amounts over $1,000",
				SpecialClauses: []string{
					"Fuel surcharge may apply based on market rates",
					"Weight discrepancies: vendor reconciles monthly with actual shipments",
					"Expedited shipping available at 25% premium",
				},
			},
			PaymentTerms: models.PaymentTerms{
				TermsName:            "2/10 Net 30",
				StandardDays:         30,
				EarlyPaymentDiscount: 2,
				DiscountDays:         10,
				LateFeePercentage:    2,
			},
		},
	}
}

func seedPayments() []models.PaymentRecord {
	return []models.PaymentRecord{
		{InvoiceNumber: "INV-2024-0001", VendorID: "VENDOR-001", Amount: 2500, InvoiceDate: date("2024-12-01"), DueDate: date("2024-12-31"), PaidDate: datePtr("2024-12-25"), AmountPaid: floatPtr(2500), Status: models.PaymentPaid},
		{InvoiceNumber: "INV-2024-0002", VendorID: "VENDOR-001", Amount: 1500, InvoiceDate: date("2024-12-10"), DueDate: date("2024-12-31"), PaidDate: datePtr("2025-01-05"), AmountPaid: floatPtr(1500), Status: models.PaymentPaid},
		{InvoiceNumber: "INV-2024-0003", VendorID: "VENDOR-001", Amount: 3000, InvoiceDate: date("2025-01-01"), DueDate: date("2025-01-31"), AmountPaid: floatPtr(3000), Status: models.PaymentPaid},
		{InvoiceNumber: "INV-2024-0004", VendorID: "VENDOR-001", Amount: 2000, InvoiceDate: date("2024-12-15"), DueDate: date("2025-01-14"), Status: models.PaymentPending},
		{InvoiceNumber: "OSI-INV-521", VendorID: "VENDOR-002", Amount: 4500, InvoiceDate: date("2024-11-01"), DueDate: date("2024-12-15"), PaidDate: datePtr("2024-12-18"), AmountPaid: floatPtr(4500), Status: models.PaymentPaid},
		{InvoiceNumber: "OSI-INV-522", VendorID: "VENDOR-002", Amount: 2800, InvoiceDate: date("2024-12-01"), DueDate: date("2025-01-15"), Status: models.PaymentPending},
		{InvoiceNumber: "LE-2024-456", VendorID: "VENDOR-003", Amount: 6000, InvoiceDate: date("2024-12-20"), DueDate: date("2025-01-19"), PaidDate: datePtr("2025-01-12"), AmountPaid: floatPtr(6000), Status: models.PaymentPaid},
		{InvoiceNumber: "LE-2024-457", VendorID: "VENDOR-003", Amount: 4500, InvoiceDate: date("2025-01-05"), DueDate: date("2025-02-04"), Status: models.PaymentPending},
	}
}
