package entity

// LineItem is one row of a document's item table. Quantity is > 0 and
// unit price >= 0; names are trimmed but not deduplicated, so the same name
// may appear on more than one row of a single document.
type LineItem struct {
	Name       string  `json:"name"`
	Qty        float64 `json:"qty"`
	UnitPrice  float64 `json:"unit_price"`
	VATPercent float64 `json:"vat_percent"`
}
