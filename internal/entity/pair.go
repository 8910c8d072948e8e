package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentPair links an order to an invoice. Created lazily on the first
// reconciliation of the two documents; unique per (OrderID, InvoiceID).
type DocumentPair struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PairView is the full read model of a pair: both documents, the current
// validation results and the summary of the latest run.
type PairView struct {
	Pair        DocumentPair       `json:"pair"`
	Order       *Document          `json:"order"`
	Invoice     *Document          `json:"invoice"`
	Validations []ValidationResult `json:"validations"`
	Summary     *ValidationSummary `json:"summary,omitempty"`
}
