package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petarmilev/invoice-recon/constants"
)

const mkInvoiceText = `Фактура бр. 11/2024
ДООЕЛ Велес Трејд
Датум на издавање: 15.03.2024
Рок за плаќање: 30.03.2024
ДДВ: 18%
Бр. ОПИС КОЛ ЦЕНА ВКУПНО
01 Производ еден 2 100,00 ден 200,00 ден
02 Производ два 1 50,00 ден 50,00 ден
Вкупно: 250,00 ден`

const enInvoiceText = `INVOICE #1001
ACME SUPPLIES LTD
Date: 03/15/2024
Item Qty Price Total
Box of pens 2 4.50 9.00
Notebook 3 2.00 6.00
Subtotal 15.00
VAT 5%
Total 15.75`

func TestPipelineExtractMacedonianInvoice(t *testing.T) {
	p := NewPipeline(testExtractConfig(), nil)
	doc := p.Extract(mkInvoiceText, 85)

	assert.Equal(t, constants.LocaleMK, doc.Locale)
	assert.Equal(t, "11/2024", doc.DocNumber)
	assert.Equal(t, "2024-03-15", doc.IssueDate)
	assert.Equal(t, "2024-03-30", doc.DueDate)
	assert.Equal(t, "ДООЕЛ Велес Трејд", doc.Supplier)
	assert.Equal(t, constants.MKD, doc.Currency)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Производ еден", doc.Items[0].Name)
	assert.Equal(t, 2.0, doc.Items[0].Qty)
	assert.Equal(t, 100.0, doc.Items[0].UnitPrice)
	assert.Equal(t, 18.0, doc.Items[0].VATPercent)
	assert.Equal(t, "Производ два", doc.Items[1].Name)
	assert.Equal(t, 50.0, doc.Items[1].UnitPrice)
}

func TestPipelineExtractEnglishInvoice(t *testing.T) {
	p := NewPipeline(testExtractConfig(), nil)
	doc := p.Extract(enInvoiceText, 90)

	assert.Equal(t, constants.LocaleEN, doc.Locale)
	assert.Equal(t, "1001", doc.DocNumber)
	assert.Equal(t, "2024-03-15", doc.IssueDate)
	assert.Equal(t, "ACME SUPPLIES LTD", doc.Supplier)
	assert.Equal(t, constants.USD, doc.Currency)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Box of pens", doc.Items[0].Name)
	assert.Equal(t, 2.0, doc.Items[0].Qty)
	assert.Equal(t, 4.50, doc.Items[0].UnitPrice)
	// Stated document-level VAT overrides the default on every item.
	assert.Equal(t, 5.0, doc.Items[0].VATPercent)
	assert.Equal(t, "Notebook", doc.Items[1].Name)
	assert.Equal(t, 3.0, doc.Items[1].Qty)
	assert.Equal(t, 2.0, doc.Items[1].UnitPrice)
}

func TestPipelineLowConfidenceSkipsEverything(t *testing.T) {
	p := NewPipeline(testExtractConfig(), nil)
	doc := p.Extract(mkInvoiceText, 10)

	assert.Equal(t, constants.LocaleMK, doc.Locale)
	assert.Equal(t, constants.MKD, doc.Currency)
	assert.Empty(t, doc.DocNumber)
	assert.Empty(t, doc.Supplier)
	assert.Empty(t, doc.IssueDate)
	assert.Empty(t, doc.Items)
}

func TestPipelineMidConfidenceExtractsFieldsButNoItems(t *testing.T) {
	// Between the parse and item thresholds: fields yes, line items no.
	p := NewPipeline(testExtractConfig(), nil)
	doc := p.Extract(mkInvoiceText, 35)

	assert.Equal(t, "11/2024", doc.DocNumber)
	assert.Equal(t, "ДООЕЛ Велес Трејд", doc.Supplier)
	assert.Empty(t, doc.Items)
}

func TestPipelineIsDeterministic(t *testing.T) {
	p := NewPipeline(testExtractConfig(), nil)
	first := p.Extract(mkInvoiceText, 85)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Extract(mkInvoiceText, 85))
	}
}
