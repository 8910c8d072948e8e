package extract

import (
	"log/slog"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
)

// Pipeline composes locale detection, field extraction and line-item
// extraction into a single call: recognized text plus its confidence in,
// an ExtractedDocument out. The pipeline is pure: identical input yields
// identical output, so callers may run any number of extractions in
// parallel across unrelated documents.
type Pipeline struct {
	cfg common.ExtractConfig
	log *slog.Logger
}

func NewPipeline(cfg common.ExtractConfig, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Extract parses recognized text into a structured document. Missing
// fields are left empty rather than reported as errors: absence is the
// signal that manual entry is required. Confidence below the parse
// threshold skips extraction entirely and yields only the locale's
// default currency.
func (p *Pipeline) Extract(text string, confidence float64) entity.ExtractedDocument {
	locale := DetectLocale(text)
	doc := entity.ExtractedDocument{
		Locale:   locale,
		Currency: constants.DefaultCurrencyFor(locale),
	}

	if confidence < p.cfg.MinParseConfidence {
		p.log.Info("recognition confidence below parse threshold, leaving document for manual entry",
			"confidence", confidence, "threshold", p.cfg.MinParseConfidence)
		return doc
	}

	lines := splitLines(text)
	fields := NewFieldExtractor(locale)

	doc.DocNumber = fields.DocNumber(text)
	doc.IssueDate, doc.DueDate = fields.Dates(text)
	doc.Supplier = fields.Supplier(lines)
	doc.Currency = fields.Currency(text)

	vatPercent := fields.DocumentVAT(lines, p.cfg.DefaultVATPercent)
	items := NewItemExtractor(p.cfg).Extract(lines, locale, confidence, doc.Supplier, vatPercent)
	doc.Items = items

	p.log.Info("extracted document",
		"locale", locale, "confidence", confidence,
		"doc_number", doc.DocNumber, "supplier", doc.Supplier,
		"currency", doc.Currency, "items", len(items))
	return doc
}
