package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a dollar amount for prompt context with a thousands
// separator and two decimals, e.g. 2000 -> "$2,000.00".
func FormatMoney(amount float64) string {
	return moneyPrinter.Sprintf("$%.2f", amount)
}
