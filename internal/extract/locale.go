package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/petarmilev/invoice-recon/constants"
)

// Macedonian marker words: currency, table headers and invoice boilerplate
// that survive even poor recognition.
var mkMarkers = []string{
	"фактура", "ддв", "вкупно", "денар", "ден.", "добавувач",
	"купувач", "за плаќање", "датум", "испратница", "бр.",
}

// English invoice/business keywords checked after the Macedonian rules.
var enMarkers = []string{
	"invoice", "subtotal", "total", "qty", "quantity", "unit price",
	"amount due", "bill to", "due date", "vat",
}

var (
	reDottedDate = regexp.MustCompile(`\b\d{1,2}\.\d{1,2}\.\d{4}\b`)
	reSlashNum   = regexp.MustCompile(`\b\d+/\d{4}\b`)
)

// DetectLocale classifies recognized text into a locale, deciding which
// extraction ruleset applies. Rules run in precedence order; the first
// match wins, and the result is deterministic for identical input.
func DetectLocale(text string) constants.Locale {
	lowered := strings.ToLower(text)

	// 1. Macedonian markers or any Cyrillic script at all.
	for _, m := range mkMarkers {
		if strings.Contains(lowered, m) {
			return constants.LocaleMK
		}
	}
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return constants.LocaleMK
		}
	}

	// 2. Latin-script Macedonian documents: a DD.MM.YYYY date together
	// with an NNN/YYYY document number is the domestic convention.
	if reDottedDate.MatchString(text) && reSlashNum.MatchString(text) {
		return constants.LocaleMK
	}

	// 3. English business keywords.
	for _, m := range enMarkers {
		if strings.Contains(lowered, m) {
			return constants.LocaleEN
		}
	}

	// 4. Default.
	return constants.LocaleEN
}
