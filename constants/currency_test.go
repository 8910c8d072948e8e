package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeCurrency(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Currency
		ok       bool
	}{
		{"denar word", "Вкупно 1.200,00 ден", MKD, true},
		{"mkd code", "Currency: MKD", MKD, true},
		{"euro sign", "Total 99,00 €", EUR, true},
		{"euro word cyrillic", "Вкупно 99 евро", EUR, true},
		{"dollar sign", "Total $49.90", USD, true},
		{"pound sign", "Total £12.00", GBP, true},
		{"case insensitive code", "total 100 eur", EUR, true},
		{"no token", "nothing to see", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CanonicalizeCurrency(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDefaultCurrencyFor(t *testing.T) {
	assert.Equal(t, MKD, DefaultCurrencyFor(LocaleMK))
	assert.Equal(t, USD, DefaultCurrencyFor(LocaleEN))
}
