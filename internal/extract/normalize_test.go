package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petarmilev/invoice-recon/constants"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		locale   constants.Locale
		expected string
		ok       bool
	}{
		{"mk dotted day first", "15.03.2024", constants.LocaleMK, "2024-03-15", true},
		{"mk dotted single digits", "1.3.2024", constants.LocaleMK, "2024-03-01", true},
		{"mk two digit year", "1.2.24", constants.LocaleMK, "2024-02-01", true},
		{"iso year first stays iso", "2024-03-15", constants.LocaleEN, "2024-03-15", true},
		{"en slash is month first", "03/15/2024", constants.LocaleEN, "2024-03-15", true},
		{"en dash is day first", "15-03-2024", constants.LocaleEN, "2024-03-15", true},
		{"no date shape", "March 5", constants.LocaleEN, "March 5", false},
		{"empty", "", constants.LocaleMK, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, tt.locale)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNormalizeDateSoftFailure(t *testing.T) {
	// Unparseable input comes back unchanged so the operator sees the raw text.
	assert.Equal(t, "next tuesday", NormalizeDate("next tuesday", constants.LocaleEN))
	assert.Equal(t, "2024-03-15", NormalizeDate("15.03.2024", constants.LocaleMK))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		locale   constants.Locale
		expected float64
		ok       bool
	}{
		{"mk decimal comma", "100,50", constants.LocaleMK, 100.50, true},
		{"mk thousands dot", "1.250,00", constants.LocaleMK, 1250.00, true},
		{"en decimal dot", "100.50", constants.LocaleEN, 100.50, true},
		{"en thousands comma", "1,250.00", constants.LocaleEN, 1250.00, true},
		{"plain integer either locale", "42", constants.LocaleMK, 42, true},
		{"not a number", "abc", constants.LocaleEN, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw, tt.locale)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}
