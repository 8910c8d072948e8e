package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petarmilev/invoice-recon/constants"
)

func TestDetectLocale(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected constants.Locale
	}{
		{
			name:     "macedonian marker word",
			text:     "Фактура бр. 11/2024\nВкупно: 1.200,00 ден",
			expected: constants.LocaleMK,
		},
		{
			name:     "cyrillic script without marker words",
			text:     "Продавница Велес",
			expected: constants.LocaleMK,
		},
		{
			name:     "latin macedonian with dotted date and slash number",
			text:     "Faktura 11/2024 od 15.03.2024",
			expected: constants.LocaleMK,
		},
		{
			name:     "english invoice keywords",
			text:     "INVOICE #1001\nTotal: $49.90",
			expected: constants.LocaleEN,
		},
		{
			name:     "dotted date alone is not enough for mk",
			text:     "Delivered 15.03.2024, invoice attached",
			expected: constants.LocaleEN,
		},
		{
			name:     "unrecognizable text defaults to en",
			text:     "lorem ipsum dolor sit amet",
			expected: constants.LocaleEN,
		},
		{
			name:     "empty text defaults to en",
			text:     "",
			expected: constants.LocaleEN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectLocale(tt.text))
		})
	}
}

func TestDetectLocaleDeterministic(t *testing.T) {
	text := "Фактура 11/2024 invoice total"
	first := DetectLocale(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DetectLocale(text))
	}
}
