// Package knowledge retrieves contract facts from a searchable knowledge
// base. Retrieval is strictly advisory: every failure mode (missing
// credentials, transport errors, empty result sets) degrades to "nothing
// found" so the analysis stage can fall back to local contract data.
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"vdms/internal/models"

	"github.com/rs/zerolog"
)

// Source is one ranked snippet backing a search answer
type Source struct {
	ID      string  `json:"id,omitempty"`
	Title   string  `json:"title,omitempty"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// SearchResult is the raw outcome of a knowledge base search
type SearchResult struct {
	Answer       string   `json:"answer"`
	Sources      []Source `json:"sources"`
	TotalResults int      `json:"total_results"`
}

// Searcher is the opaque knowledge-search capability
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) (*SearchResult, error)
}

// Retriever turns knowledge base searches into contract-fact bundles
type Retriever struct {
	searcher   Searcher
	maxResults int
	logger     zerolog.Logger
}

// NewRetriever creates a retriever over the given search backend. A nil
// searcher is allowed and makes every lookup resolve to nothing found.
func NewRetriever(searcher Searcher, maxResults int, logger zerolog.Logger) *Retriever {
	return &Retriever{
		searcher:   searcher,
		maxResults: maxResults,
		logger:     logger,
	}
}

// ContractByInvoice queries the knowledge base for contract facts tied to
// an invoice number. Returns nil when nothing usable was found; never
// returns an error.
func (r *Retriever) ContractByInvoice(ctx context.Context, invoiceNumber, vendorEmail string) *models.KnowledgeBundle {
	if r.searcher == nil {
		r.logger.Warn().Msg("Knowledge search not configured, skipping lookup")
		return nil
	}

	query := buildContractQuery(invoiceNumber, vendorEmail)

	result, err := r.searcher.Search(ctx, query, r.maxResults)
	if err != nil {
		r.logger.Warn().Err(err).Str("invoice_number", invoiceNumber).Msg("Knowledge search failed, falling back to local data")
		return nil
	}

	if result == nil || result.TotalResults == 0 {
		r.logger.Warn().Str("invoice_number", invoiceNumber).Msg("No contract information found in knowledge base")
		return nil
	}

	bundle := parseBundle(result)

	r.logger.Info().
		Str("invoice_number", invoiceNumber).
		Str("contract_number", bundle.ContractNumber).
		Str("vendor_name", bundle.VendorName).
		Msg("Contract retrieved from knowledge base")

	return bundle
}

// QueryTerms runs an ad-hoc question against the knowledge base and
// returns the raw answer, or "" when nothing was found. Diagnostic use
// only; not part of the analysis pipeline.
func (r *Retriever) QueryTerms(ctx context.Context, invoiceNumber, termsQuery string) string {
	if r.searcher == nil {
		return ""
	}

	query := fmt.Sprintf("For invoice %s: %s", invoiceNumber, termsQuery)

	result, err := r.searcher.Search(ctx, query, r.maxResults)
	if err != nil {
		r.logger.Warn().Err(err).Str("invoice_number", invoiceNumber).Msg("Knowledge terms query failed")
		return ""
	}

	if result == nil || result.TotalResults == 0 {
		return ""
	}

	return result.Answer
}

func buildContractQuery(invoiceNumber, vendorEmail string) string {
	var query strings.Builder
	query.WriteString(fmt.Sprintf("Find the vendor contract details for invoice number %s", invoiceNumber))
	if vendorEmail != "" {
		query.WriteString(fmt.Sprintf(" from vendor %s", vendorEmail))
	}
	query.WriteString(". Include payment terms, service description, dispute resolution process, and special clauses.")
	return query.String()
}
