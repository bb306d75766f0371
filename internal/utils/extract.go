// Package utils provides small text-scanning helpers shared by the
// dispute pipeline: invoice number and dollar amount extraction, sender
// address normalization and prompt-friendly money formatting.
package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	invoiceRegex    = regexp.MustCompile(`(?i)(?:Invoice\s*#?|INV-?|#)\s*([\w\-]+)`)
	invoicePrefixRe = regexp.MustCompile(`(?i)^(Invoice|INV|#)[\s#\-]*`)
	amountRegex     = regexp.MustCompile(`\$\s*([\d,]+\.?\d*)`)
	addressRegex    = regexp.MustCompile(`<([^>]+)>`)
)

// ExtractInvoiceNumbers scans free text for invoice references such as
// "Invoice #123", "INV-2024-0004" or "#A-17" and returns the bare numbers
// in order of appearance.
func ExtractInvoiceNumbers(text string) []string {
	matches := invoiceRegex.FindAllString(text, -1)
	numbers := make([]string, 0, len(matches))
	for _, match := range matches {
		extracted := strings.TrimSpace(invoicePrefixRe.ReplaceAllString(match, ""))
		if extracted != "" {
			numbers = append(numbers, extracted)
		}
	}
	return numbers
}

// ExtractAmounts scans free text for dollar amounts ("$2,000", "$149.99")
// and returns the positive parsed values in order of appearance.
func ExtractAmounts(text string) []float64 {
	matches := amountRegex.FindAllStringSubmatch(text, -1)
	amounts := make([]float64, 0, len(matches))
	for _, match := range matches {
		raw := strings.ReplaceAll(match[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			continue
		}
		amounts = append(amounts, value)
	}
	return amounts
}

// ExtractEmailAddress pulls the bare address out of a From header such as
// `"John Smith" <john@techsupply.com>`. A header without angle brackets is
// returned trimmed as-is.
func ExtractEmailAddress(fromHeader string) string {
	if match := addressRegex.FindStringSubmatch(fromHeader); match != nil {
		return strings.TrimSpace(match[1])
	}
	return strings.TrimSpace(fromHeader)
}
