package constants

// DocumentType distinguishes the two sides of a reconciliation pair.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocumentTypeOrder   DocumentType = "ORDER"
	DocumentTypeInvoice DocumentType = "INVOICE"
)

// ValidationCategory groups related discrepancy checks.
type ValidationCategory string

const (
	CategoryItems  ValidationCategory = "items"
	CategoryVAT    ValidationCategory = "vat"
	CategoryDates  ValidationCategory = "dates"
	CategoryTotals ValidationCategory = "totals"
)

// Categories lists every validation category in report order.
var Categories = []ValidationCategory{CategoryItems, CategoryVAT, CategoryDates, CategoryTotals}

// Severity marks how serious a single discrepancy is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationStatus is the aggregated status of a category or of the whole pair.
type ValidationStatus string

const (
	StatusValid   ValidationStatus = "valid"
	StatusWarning ValidationStatus = "warning"
	StatusError   ValidationStatus = "error"
)

// Escalate merges a new severity into an aggregated status. An error is
// terminal; a warning never downgrades an error.
func Escalate(current ValidationStatus, sev Severity) ValidationStatus {
	switch {
	case sev == SeverityError:
		return StatusError
	case current == StatusValid:
		return StatusWarning
	default:
		return current
	}
}
