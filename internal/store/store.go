// Package store serves the vendor, contract and payment-ledger reference
// data the dispute pipeline reads. Two implementations exist: a MySQL
// store for production and an in-memory seed store used for demos and
// tests when no DATABASE_URL is configured.
package store

import (
	"context"
	"errors"

	"vdms/internal/models"
)

var (
	// ErrVendorNotFound is returned when no vendor matches the lookup key
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrContractNotFound is returned when a vendor has no active contract
	ErrContractNotFound = errors.New("contract not found")
)

// Store is the read interface over vendor reference data
type Store interface {
	Vendors(ctx context.Context) ([]models.Vendor, error)
	VendorByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	// VendorByEmail matches the normalized contact address, case-insensitive exact match.
	VendorByEmail(ctx context.Context, email string) (*models.Vendor, error)
	ContractByVendorID(ctx context.Context, vendorID string) (*models.Contract, error)
	PaymentHistory(ctx context.Context, vendorID string) ([]models.PaymentRecord, error)
}
