package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vdms/internal/models"
	"vdms/internal/utils"
)

// ErrExtraction marks a generation output that could not be parsed into
// dispute facts. Callers match it with errors.Is; the raw model output
// travels on the concrete *ExtractionError for diagnostics.
var ErrExtraction = errors.New("failed to extract email content")

// ExtractionError carries the raw model output that failed to parse
type ExtractionError struct {
	RawOutput string
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%v: %v", ErrExtraction, e.Err)
}

func (e *ExtractionError) Unwrap() error { return ErrExtraction }

// stripCodeFence removes a surrounding markdown code fence, with or
// without the json language tag. Models add these despite the JSON-only
// system prompt.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "```json"):
		s = strings.TrimPrefix(s, "```json")
	case strings.HasPrefix(s, "```"):
		s = strings.TrimPrefix(s, "```")
	default:
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// ExtractFacts runs the extraction stage: one generation call, then a
// permissive JSON parse. Missing fields keep their zero values; only
// malformed JSON fails. On parse failure the raw output is preserved in
// the returned *ExtractionError.
func (a *Agent) ExtractFacts(ctx context.Context, email *models.Email) (*models.ExtractedDisputeFacts, error) {
	a.logger.Info().Str("email_id", email.ID).Str("from", email.From).Msg("Extracting dispute facts")

	raw, err := a.generator.Generate(ctx, buildExtractionPrompt(email), extractionSystemPrompt)
	if err != nil {
		return nil, err
	}

	var facts models.ExtractedDisputeFacts
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &facts); err != nil {
		a.logger.Error().Str("email_id", email.ID).Str("raw_output", raw).Msg("Extraction output is not valid JSON")
		return nil, &ExtractionError{RawOutput: raw, Err: err}
	}

	// The model sometimes misses identifiers it was asked for; a direct
	// scan of the body recovers the obvious ones.
	if len(facts.InvoiceNumbers) == 0 {
		facts.InvoiceNumbers = utils.ExtractInvoiceNumbers(email.Body)
	}
	if len(facts.Amounts) == 0 {
		facts.Amounts = utils.ExtractAmounts(email.Body)
	}

	a.logger.Info().
		Str("email_id", email.ID).
		Strs("invoice_numbers", facts.InvoiceNumbers).
		Str("tone", facts.Tone).
		Msg("Email parsed successfully")

	return &facts, nil
}
