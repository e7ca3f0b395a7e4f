package geo

import "strings"

// countryCurrency maps ISO-3166 alpha-2 country codes to the currency codes
// the form supports. Countries outside the table default to USD.
var countryCurrency = map[string]string{
	"US": "USD",
	"CA": "CAD",
	"GB": "GBP",
	"AU": "AUD",
	"IN": "INR",
	"JP": "JPY",
	"CN": "CNY",

	// Eurozone
	"AT": "EUR", "BE": "EUR", "CY": "EUR", "DE": "EUR", "EE": "EUR",
	"ES": "EUR", "FI": "EUR", "FR": "EUR", "GR": "EUR", "HR": "EUR",
	"IE": "EUR", "IT": "EUR", "LT": "EUR", "LU": "EUR", "LV": "EUR",
	"MT": "EUR", "NL": "EUR", "PT": "EUR", "SI": "EUR", "SK": "EUR",
}

// CurrencyForCountry returns the default currency for a country code,
// falling back to USD for unknown or empty input.
func CurrencyForCountry(code string) string {
	if c, ok := countryCurrency[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return "USD"
}
