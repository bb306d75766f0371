package agent

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"vdms/internal/models"
)

// Deterministic derivation of typed fields from the analysis narrative.
// Pure string classification with no generation calls and no failure
// paths: an unrecognized narrative resolves to documented defaults.

// ReasoningFallback is returned when the narrative has no ANALYSIS section
const ReasoningFallback = "See full analysis above"

var (
	analysisAnchorRe = regexp.MustCompile(`(?i)ANALYSIS:?\s*`)
	reasoningStopRe  = regexp.MustCompile(`(?i)\n\d+\.|RECOMMENDATION`)
	draftAnchorRe    = regexp.MustCompile(`(?i)DRAFT RESPONSE:?\s*`)
)

// ExtractConfidence classifies the narrative's confidence statement.
// Defaults to medium, not "unknown".
func ExtractConfidence(narrative string) string {
	lower := strings.ToLower(narrative)
	if strings.Contains(lower, "high confidence") {
		return models.ConfidenceHigh
	}
	if strings.Contains(lower, "low confidence") {
		return models.ConfidenceLow
	}
	return models.ConfidenceMedium
}

// ExtractRecommendation classifies the recommended action. Precedence
// matters: approve+payment wins over reject/deny, which wins over
// partial/compromise; everything else is further investigation.
func ExtractRecommendation(narrative string) string {
	lower := strings.ToLower(narrative)
	if strings.Contains(lower, "approve") && strings.Contains(lower, "payment") {
		return models.ActionApprovePayment
	}
	if strings.Contains(lower, "reject") || strings.Contains(lower, "deny") {
		return models.ActionRejectClaim
	}
	if strings.Contains(lower, "partial") || strings.Contains(lower, "compromise") {
		return models.ActionPartialPayment
	}
	return models.ActionFurtherInvestigation
}

// ExtractReasoning returns the text between the ANALYSIS anchor and the
// next numbered line or RECOMMENDATION anchor.
func ExtractReasoning(narrative string) string {
	loc := analysisAnchorRe.FindStringIndex(narrative)
	if loc == nil {
		return ReasoningFallback
	}

	rest := narrative[loc[1]:]
	if stop := reasoningStopRe.FindStringIndex(rest); stop != nil {
		rest = rest[:stop[0]]
	}

	return strings.TrimSpace(rest)
}

// ExtractDraftResponse returns the text after the DRAFT RESPONSE anchor
// to the end of the narrative, or "" when the anchor is absent.
func ExtractDraftResponse(narrative string) string {
	loc := draftAnchorRe.FindStringIndex(narrative)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(narrative[loc[1]:])
}

// RequiredApprovals maps a recommended action to its approval chain.
// Total and deterministic; never chosen independently of the action.
func RequiredApprovals(action string) []string {
	switch action {
	case models.ActionApprovePayment:
		return []string{"Finance Manager", "Department Head"}
	case models.ActionRejectClaim:
		return []string{"Finance Manager"}
	case models.ActionPartialPayment:
		return []string{"Finance Manager", "Vendor Manager"}
	case models.ActionFurtherInvestigation:
		return []string{"Finance Manager", "Legal"}
	default:
		return []string{"Finance Manager"}
	}
}

// ClassifyDisputeType scans the extracted complaint summary for type
// keywords; first match wins, in this order.
func ClassifyDisputeType(complaint string) string {
	lower := strings.ToLower(complaint)
	switch {
	case strings.Contains(lower, "underpay") || strings.Contains(lower, "short") || strings.Contains(lower, "less than"):
		return models.DisputeUnderpayment
	case strings.Contains(lower, "late") || strings.Contains(lower, "delay") || strings.Contains(lower, "overdue"):
		return models.DisputeLatePayment
	case strings.Contains(lower, "invoice") || strings.Contains(lower, "amount") || strings.Contains(lower, "discrepanc"):
		return models.DisputeInvoiceDiscrepancy
	case strings.Contains(lower, "contract") || strings.Contains(lower, "agreement") || strings.Contains(lower, "terms"):
		return models.DisputeContractViolation
	default:
		return models.DisputeOther
	}
}

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewCaseID generates a globally unique case identifier of the form
// CASE-<unix-millis>-<6 random base36 chars>. Generated exactly once per
// analysis, regardless of downstream retries.
func NewCaseID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.IntN(len(base36Alphabet))]
	}
	return fmt.Sprintf("CASE-%d-%s", time.Now().UnixMilli(), suffix)
}
