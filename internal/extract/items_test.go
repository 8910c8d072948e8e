package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
)

func testExtractConfig() common.ExtractConfig {
	return common.ExtractConfig{
		MinParseConfidence: 30,
		MinItemConfidence:  40,
		MaxItems:           20,
		DefaultVATPercent:  18,
	}
}

func TestMkItemStrategy(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected entity.LineItem
		ok       bool
	}{
		{
			name:     "row with index name qty price",
			line:     "01 Производ еден 2 100,00 ден 200,00 ден",
			expected: entity.LineItem{Name: "Производ еден", Qty: 2, UnitPrice: 100, VATPercent: 18},
			ok:       true,
		},
		{
			name:     "thousands separator in price",
			line:     "02 Маса дрвена 1 1.250,00 ден 1.250,00 ден",
			expected: entity.LineItem{Name: "Маса дрвена", Qty: 1, UnitPrice: 1250, VATPercent: 18},
			ok:       true,
		},
		{
			name: "no currency token",
			line: "01 Производ еден 2 100,00",
			ok:   false,
		},
		{
			name: "too few numeric tokens",
			line: "Производ 100,00 ден",
			ok:   false,
		},
		{
			name: "name too short",
			line: "01 аб 2 100,00 ден 200,00 ден",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mkItemStrategy{}.ParseLine(tt.line, 18)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestEnItemStrategy(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected entity.LineItem
		ok       bool
	}{
		{
			name:     "qty then unit price then line total",
			line:     "Box of pens 2 4.50 9.00",
			expected: entity.LineItem{Name: "Box of pens", Qty: 2, UnitPrice: 4.50, VATPercent: 18},
			ok:       true,
		},
		{
			name:     "single number means qty one",
			line:     "Delivery fee 15.00",
			expected: entity.LineItem{Name: "Delivery fee", Qty: 1, UnitPrice: 15, VATPercent: 18},
			ok:       true,
		},
		{
			name:     "corrupted currency glyph repaired",
			line:     "Widget 2 S12.50 25.00",
			expected: entity.LineItem{Name: "Widget", Qty: 2, UnitPrice: 12.50, VATPercent: 18},
			ok:       true,
		},
		{
			name:     "name between first and second number",
			line:     "2 Widgets 4.00 8.00",
			expected: entity.LineItem{Name: "Widgets", Qty: 2, UnitPrice: 4.00, VATPercent: 18},
			ok:       true,
		},
		{
			name:     "two numbers with small leading qty",
			line:     "Notebook 3 6.00",
			expected: entity.LineItem{Name: "Notebook", Qty: 3, UnitPrice: 6.00, VATPercent: 18},
			ok:       true,
		},
		{
			name: "no numbers at all",
			line: "just a description line",
			ok:   false,
		},
		{
			name: "zero price rejected",
			line: "Freebie 0.00",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := enItemStrategy{}.ParseLine(tt.line, 18)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestItemExtractorConfidenceGate(t *testing.T) {
	lines := []string{"Box of pens 2 4.50 9.00"}
	e := NewItemExtractor(testExtractConfig())

	assert.Nil(t, e.Extract(lines, constants.LocaleEN, 39.9, "", 18))
	assert.Len(t, e.Extract(lines, constants.LocaleEN, 40, "", 18), 1)
}

func TestItemExtractorSkipsBoilerplateAndSupplier(t *testing.T) {
	lines := []string{
		"ACME WHOLESALE",
		"Item Qty Price Total",
		"Box of pens 2 4.50 9.00",
		"Subtotal 9.00",
		"Total 10.62",
		"Thank you for your business",
	}
	items := NewItemExtractor(testExtractConfig()).Extract(lines, constants.LocaleEN, 90, "ACME WHOLESALE", 18)
	assert.Len(t, items, 1)
	assert.Equal(t, "Box of pens", items[0].Name)
}

func TestItemExtractorRecoveryPassWithoutHeader(t *testing.T) {
	// No table header anywhere: the primary pass scans everything.
	lines := []string{
		"Box of pens 2 4.50 9.00",
		"Notebook 3 2.00 6.00",
	}
	items := NewItemExtractor(testExtractConfig()).Extract(lines, constants.LocaleEN, 90, "", 18)
	assert.Len(t, items, 2)
}

func TestItemExtractorCap(t *testing.T) {
	cfg := testExtractConfig()
	cfg.MaxItems = 2
	lines := []string{
		"Box of pens 2 4.50 9.00",
		"Notebook 3 2.00 6.00",
		"Stapler 1 7.00 7.00",
	}
	items := NewItemExtractor(cfg).Extract(lines, constants.LocaleEN, 90, "", 18)
	assert.Len(t, items, 2)
}
