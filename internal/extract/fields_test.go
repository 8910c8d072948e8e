package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petarmilev/invoice-recon/constants"
)

func TestFieldExtractorDocNumber(t *testing.T) {
	tests := []struct {
		name     string
		locale   constants.Locale
		text     string
		expected string
	}{
		{"mk slash year", constants.LocaleMK, "Фактура бр. 15/2024\nДатум: 15.03.2024", "15/2024"},
		{"mk bare slash token", constants.LocaleMK, "Број 7/24", "7/24"},
		{"en code prefixed wins over bare digits", constants.LocaleEN, "Invoice #: INV-2024-001\nOrder 555", "INV-2024-001"},
		{"en bare digits fallback", constants.LocaleEN, "INVOICE No. 4471", "4471"},
		{"en hash digits", constants.LocaleEN, "INVOICE #1001", "1001"},
		{"nothing matches", constants.LocaleEN, "no numbering anywhere", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewFieldExtractor(tt.locale).DocNumber(tt.text))
		})
	}
}

func TestFieldExtractorDates(t *testing.T) {
	t.Run("mk first date is issue second is due", func(t *testing.T) {
		text := "Датум на издавање: 15.03.2024\nРок за плаќање: 30.03.2024"
		issue, due := NewFieldExtractor(constants.LocaleMK).Dates(text)
		assert.Equal(t, "2024-03-15", issue)
		assert.Equal(t, "2024-03-30", due)
	})

	t.Run("en single date leaves due empty", func(t *testing.T) {
		issue, due := NewFieldExtractor(constants.LocaleEN).Dates("Date: 03/15/2024")
		assert.Equal(t, "2024-03-15", issue)
		assert.Empty(t, due)
	})

	t.Run("no dates at all", func(t *testing.T) {
		issue, due := NewFieldExtractor(constants.LocaleMK).Dates("Фактура без датум")
		assert.Empty(t, issue)
		assert.Empty(t, due)
	})
}

func TestFieldExtractorSupplier(t *testing.T) {
	tests := []struct {
		name     string
		locale   constants.Locale
		lines    []string
		expected string
	}{
		{
			name:   "mk first qualifying header line",
			locale: constants.LocaleMK,
			lines: []string{
				"Фактура бр. 11/2024",
				"ДООЕЛ Велес Трејд",
				"ул. Маршал Тито 12",
				"Бр. ОПИС КОЛ ЦЕНА",
				"01 Производ еден 2 100,00 ден 200,00 ден",
			},
			expected: "ДООЕЛ Велес Трејд",
		},
		{
			name:   "mk counterparty after do marker",
			locale: constants.LocaleMK,
			lines: []string{
				"Испратница до: Велес Маркет",
				"Бр. ОПИС КОЛ ЦЕНА",
			},
			expected: "Велес Маркет",
		},
		{
			name:   "en prefers legal entity suffix over earlier plain line",
			locale: constants.LocaleEN,
			lines: []string{
				"Some Plain Name",
				"GLOBEX SUPPLIES LLC",
				"Item Qty Price",
			},
			expected: "GLOBEX SUPPLIES LLC",
		},
		{
			name:   "en all caps line qualifies",
			locale: constants.LocaleEN,
			lines: []string{
				"Invoice #1001",
				"ACME WHOLESALE",
				"Item Qty Price",
			},
			expected: "ACME WHOLESALE",
		},
		{
			name:   "en prefers cyrillic legal entity suffix over earlier plain line",
			locale: constants.LocaleEN,
			lines: []string{
				"Some Plain Name",
				"Велес Трејд ДООЕЛ",
				"Item Qty Price",
			},
			expected: "Велес Трејд ДООЕЛ",
		},
		{
			name:   "mk cyrillic label lines never qualify",
			locale: constants.LocaleMK,
			lines: []string{
				"Фактура бр. 11/2024",
				"Датум на издавање: 15.03.2024",
				"Назив: Нешто Друго",
				"Велес Трејд ДООЕЛ",
			},
			expected: "Велес Трејд ДООЕЛ",
		},
		{
			name:   "en plain first line when nothing better",
			locale: constants.LocaleEN,
			lines: []string{
				"Greenfield Trading",
				"123 Main Street",
				"Item Qty Price",
			},
			expected: "Greenfield Trading",
		},
		{
			name:   "labels digits and contacts never qualify",
			locale: constants.LocaleEN,
			lines: []string{
				"Invoice #1001",
				"Date: 03/15/2024",
				"12345 67890",
				"sales@acme.com",
				"Item Qty Price",
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewFieldExtractor(tt.locale).Supplier(tt.lines))
		})
	}
}

func TestFieldExtractorCurrency(t *testing.T) {
	tests := []struct {
		name     string
		locale   constants.Locale
		text     string
		expected constants.Currency
	}{
		{"mk denar token", constants.LocaleMK, "Вкупно: 1.200,00 ден", constants.MKD},
		{"dollar sign", constants.LocaleEN, "Total: $49.90", constants.USD},
		{"euro word", constants.LocaleEN, "Amount due 100 EUR", constants.EUR},
		{"mk default when no token", constants.LocaleMK, "Фактура без валута", constants.MKD},
		{"en default when no token", constants.LocaleEN, "no money words here", constants.USD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewFieldExtractor(tt.locale).Currency(tt.text))
		})
	}
}

func TestFieldExtractorDocumentVAT(t *testing.T) {
	mk := NewFieldExtractor(constants.LocaleMK)
	assert.Equal(t, 18.0, mk.DocumentVAT([]string{"ДДВ: 18%"}, 5))
	assert.Equal(t, 5.0, mk.DocumentVAT([]string{"VAT 5%"}, 18))
	assert.Equal(t, 18.0, mk.DocumentVAT([]string{"no vat stated"}, 18))
}
