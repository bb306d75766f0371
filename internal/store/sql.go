package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"vdms/internal/models"

	_ "github.com/go-sql-driver/mysql" // MySQL driver for the reference database
	"github.com/jmoiron/sqlx"
)

// SQLStore reads vendor reference data from MySQL. The connection is
// read-only: the pipeline never writes reference data.
type SQLStore struct {
	db *sqlx.DB
}

// Open connects to the reference database and verifies the connection
func Open(databaseURL string) (*SQLStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	db, err := sqlx.Open("mysql", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLStore{db: db}, nil
}

// NewSQLStore wraps an existing connection, used by tests with sqlmock
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// DB exposes the underlying connection for health checks
func (s *SQLStore) DB() *sqlx.DB {
	return s.db
}

// Close releases the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Vendors returns all vendors
func (s *SQLStore) Vendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	query := `SELECT id, name, email, contact_person, contract_id, payment_terms, currency, status, created_at
		FROM vendors ORDER BY id`
	if err := s.db.SelectContext(ctx, &vendors, query); err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

// VendorByID looks up a vendor by identifier
func (s *SQLStore) VendorByID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	var vendor models.Vendor
	query := `SELECT id, name, email, contact_person, contract_id, payment_terms, currency, status, created_at
		FROM vendors WHERE id = ?`
	if err := s.db.GetContext(ctx, &vendor, query, vendorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to load vendor %s: %w", vendorID, err)
	}
	return &vendor, nil
}

// VendorByEmail looks up a vendor by contact address, case-insensitive
func (s *SQLStore) VendorByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	var vendor models.Vendor
	query := `SELECT id, name, email, contact_person, contract_id, payment_terms, currency, status, created_at
		FROM vendors WHERE LOWER(email) = LOWER(?)`
	if err := s.db.GetContext(ctx, &vendor, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to load vendor by email: %w", err)
	}
	return &vendor, nil
}

// contractRow is the flat contract shape stored in MySQL; special clauses
// live in contract_clauses with an explicit position column.
type contractRow struct {
	ID                   string    `db:"id"`
	VendorID             string    `db:"vendor_id"`
	ContractNumber       string    `db:"contract_number"`
	EffectiveDate        time.Time `db:"effective_date"`
	ExpirationDate       time.Time `db:"expiration_date"`
	ServiceDescription   string    `db:"service_description"`
	Scope                string    `db:"scope"`
	Liabilities          string    `db:"liabilities"`
	DisputeResolution    string    `db:"dispute_resolution"`
	TermsName            string    `db:"terms_name"`
	StandardDays         int       `db:"standard_days"`
	EarlyPaymentDiscount float64   `db:"early_payment_discount"`
	DiscountDays         int       `db:"discount_days"`
	LateFeePercentage    float64   `db:"late_fee_percentage"`
}

// ContractByVendorID returns the vendor's active contract with its
// special clauses in stored order.
func (s *SQLStore) ContractByVendorID(ctx context.Context, vendorID string) (*models.Contract, error) {
	var row contractRow
	query := `SELECT id, vendor_id, contract_number, effective_date, expiration_date,
		service_description, scope, liabilities, dispute_resolution,
		terms_name, standard_days, early_payment_discount, discount_days, late_fee_percentage
		FROM contracts WHERE vendor_id = ?`
	if err := s.db.GetContext(ctx, &row, query, vendorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContractNotFound
		}
		return nil, fmt.Errorf("failed to load contract for vendor %s: %w", vendorID, err)
	}

	var clauses []string
	clauseQuery := `SELECT clause FROM contract_clauses WHERE contract_id = ? ORDER BY position`
	if err := s.db.SelectContext(ctx, &clauses, clauseQuery, row.ID); err != nil {
		return nil, fmt.Errorf("failed to load clauses for contract %s: %w", row.ID, err)
	}

	return &models.Contract{
		ID:             row.ID,
		VendorID:       row.VendorID,
		ContractNumber: row.ContractNumber,
		EffectiveDate:  row.EffectiveDate,
		ExpirationDate: row.ExpirationDate,
		Terms: models.ContractTerms{
			ServiceDescription: row.ServiceDescription,
			Scope:              row.Scope,
			Liabilities:        row.Liabilities,
			DisputeResolution:  row.DisputeResolution,
			SpecialClauses:     clauses,
		},
		PaymentTerms: models.PaymentTerms{
			TermsName:            row.TermsName,
			StandardDays:         row.StandardDays,
			EarlyPaymentDiscount: row.EarlyPaymentDiscount,
			DiscountDays:         row.DiscountDays,
			LateFeePercentage:    row.LateFeePercentage,
		},
	}, nil
}

// PaymentHistory returns the vendor's ledger entries, oldest first
func (s *SQLStore) PaymentHistory(ctx context.Context, vendorID string) ([]models.PaymentRecord, error) {
	var history []models.PaymentRecord
	query := `SELECT invoice_number, vendor_id, amount, invoice_date, due_date, paid_date, amount_paid, status
		FROM payment_records WHERE vendor_id = ? ORDER BY invoice_date`
	if err := s.db.SelectContext(ctx, &history, query, vendorID); err != nil {
		return nil, fmt.Errorf("failed to load payment history for vendor %s: %w", vendorID, err)
	}
	return history, nil
}
