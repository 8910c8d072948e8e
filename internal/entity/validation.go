package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/constants"
)

// ValidationResult is a single discrepancy found while reconciling a pair.
type ValidationResult struct {
	ID       uuid.UUID                    `json:"id,omitempty"`
	PairID   uuid.UUID                    `json:"pair_id,omitempty"`
	Category constants.ValidationCategory `json:"category"`
	Message  string                       `json:"message"`
	Severity constants.Severity           `json:"severity"`
}

// ValidationSummary aggregates the results of one reconciliation run by
// category. One per pair; fully replaced on every re-run.
type ValidationSummary struct {
	PairID       uuid.UUID                  `json:"pair_id,omitempty"`
	ItemsStatus  constants.ValidationStatus `json:"items_status"`
	VATStatus    constants.ValidationStatus `json:"vat_status"`
	DatesStatus  constants.ValidationStatus `json:"dates_status"`
	TotalsStatus constants.ValidationStatus `json:"totals_status"`
	FinalStatus  constants.ValidationStatus `json:"final_status"`
	UpdatedAt    time.Time                  `json:"updated_at,omitempty"`
}

// Totals holds the computed sums for one document.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	VATTotal   float64 `json:"vat_total"`
	GrandTotal float64 `json:"grand_total"`
}
