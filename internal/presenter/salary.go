// Package presenter derives the display values for a job detail page:
// formatted salary, location fallback, and the apply affordance chosen from
// the record's contact data.
package presenter

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbols maps supported 3-letter codes to their display symbol.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CAD": "$",
	"AUD": "$",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
}

var salaryPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatSalaryRange renders a salary band with the currency symbol, thousands
// grouping, and no fraction digits. Nil is returned when neither bound is
// present. Unknown currency codes fall back to USD.
func FormatSalaryRange(min, max *int, currency string) *string {
	if min == nil && max == nil {
		return nil
	}

	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currencySymbols["USD"]
	}
	amount := func(v int) string {
		return symbol + salaryPrinter.Sprintf("%v", number.Decimal(v))
	}

	var s string
	switch {
	case min != nil && max != nil:
		s = fmt.Sprintf("%s - %s", amount(*min), amount(*max))
	case min != nil:
		s = fmt.Sprintf("From %s", amount(*min))
	default:
		s = fmt.Sprintf("Up to %s", amount(*max))
	}
	return &s
}
