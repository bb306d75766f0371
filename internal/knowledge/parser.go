package knowledge

import (
	"regexp"
	"strings"

	"vdms/internal/models"
)

// NotSpecified is the placeholder for fields the answer text never named.
// Downstream prompts tolerate it; a confidently-wrong value would be worse.
const NotSpecified = "Not specified"

// NoSpecialClauses is the sentinel clause list entry when the answer text
// contains no bullet or numbered lines.
const NoSpecialClauses = "No special clauses found"

var (
	bulletRegex   = regexp.MustCompile(`[•\-*]\s*([^\n]+)`)
	numberedRegex = regexp.MustCompile(`\d+\.\s*([^\n]+)`)
)

// parseBundle heuristically extracts structured contract fields from a
// search answer. Best-effort only: each field tries "<label>: value"
// first and then falls back to the first line containing a generic
// keyword, which can mismatch (e.g. "net" inside an unrelated sentence).
func parseBundle(result *SearchResult) *models.KnowledgeBundle {
	answer := result.Answer

	contents := make([]string, 0, len(result.Sources))
	for _, source := range result.Sources {
		contents = append(contents, source.Content)
	}

	return &models.KnowledgeBundle{
		ContractNumber:     extractField(answer, "contract number", "contract"),
		VendorName:         extractField(answer, "vendor name", "vendor"),
		PaymentTerms:       extractField(answer, "payment terms", "net"),
		ServiceDescription: extractField(answer, "service description", "services"),
		DisputeResolution:  extractField(answer, "dispute resolution", "process"),
		SpecialClauses:     extractList(answer),
		EffectiveDate:      extractField(answer, "effective date", "date"),
		ExpirationDate:     extractField(answer, "expiration date", "expires"),
		RawContext:         strings.Join(contents, "\n\n"),
	}
}

// extractField finds "<label>: value" up to the next newline or period,
// falling back to the first line containing the keyword.
func extractField(text, label, fallbackKeyword string) string {
	labelRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `[:\s]+([^\n.]+)`)
	if match := labelRe.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}

	fallbackRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(fallbackKeyword) + `[^\n]*`)
	if match := fallbackRe.FindString(text); match != "" {
		return strings.TrimSpace(match)
	}

	return NotSpecified
}

// extractList collects bullet and numbered list lines from the answer
func extractList(text string) []string {
	var items []string

	for _, match := range bulletRegex.FindAllStringSubmatch(text, -1) {
		items = append(items, strings.TrimSpace(match[1]))
	}
	for _, match := range numberedRegex.FindAllStringSubmatch(text, -1) {
		items = append(items, strings.TrimSpace(match[1]))
	}

	if len(items) == 0 {
		return []string{NoSpecialClauses}
	}
	return items
}
