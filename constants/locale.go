package constants

// Locale names the extraction ruleset applied to recognized text.
type Locale string

const (
	LocaleMK Locale = "mk"
	LocaleEN Locale = "en"
)

// DefaultCurrencyFor returns the currency assumed when no currency token
// appears anywhere in the document text.
func DefaultCurrencyFor(loc Locale) Currency {
	if loc == LocaleMK {
		return MKD
	}
	return USD
}
