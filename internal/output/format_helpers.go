package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// usd groups thousands the en-US way for the console reports.
var usd = message.NewPrinter(language.English)

// FormatCurrency formats a decimal as USD currency with 2 decimals and
// grouped thousands. Kept here so it can be reused by multiple formatters and
// unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return usd.Sprintf("$%.2f", amount.InexactFloat64())
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
