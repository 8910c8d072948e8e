package constants

import "strings"

// Currency is one of the four supported currency codes.
type Currency string

const (
	MKD Currency = "MKD"
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

var allCurrencies = []Currency{MKD, EUR, USD, GBP}

// CurrencyCodes returns the supported codes as plain strings.
func CurrencyCodes() []string {
	result := make([]string, len(allCurrencies))
	for i, c := range allCurrencies {
		result[i] = string(c)
	}
	return result
}

// currencySynonyms maps codes, symbols and native-language words to a
// currency code. Keys are matched case-insensitively as substrings of the
// document text, in declaration-group order: MKD first since denar words
// also appear inside longer boilerplate.
var currencySynonyms = []struct {
	token    string
	currency Currency
}{
	{"mkd", MKD},
	{"ден", MKD},
	{"денар", MKD},
	{"eur", EUR},
	{"евро", EUR},
	{"euro", EUR},
	{"€", EUR},
	{"usd", USD},
	{"долар", USD},
	{"dollar", USD},
	{"$", USD},
	{"gbp", GBP},
	{"фунта", GBP},
	{"£", GBP},
}

// CanonicalizeCurrency scans text for a known currency token and returns the
// matching code. The boolean reports whether any token matched.
func CanonicalizeCurrency(text string) (Currency, bool) {
	lowered := strings.ToLower(text)
	for _, s := range currencySynonyms {
		if strings.Contains(lowered, s.token) {
			return s.currency, true
		}
	}
	return "", false
}
