package entity

import "github.com/petarmilev/invoice-recon/constants"

// ExtractedDocument is the unvalidated result of running the extraction
// pipeline over recognized text. Every field except Currency is optional:
// an empty field means the operator has to fill it in by hand. The struct
// is ephemeral; its fields are copied into a Document on submission.
type ExtractedDocument struct {
	DocNumber string             `json:"doc_number,omitempty"`
	IssueDate string             `json:"issue_date,omitempty"`
	DueDate   string             `json:"due_date,omitempty"`
	Supplier  string             `json:"supplier,omitempty"`
	Currency  constants.Currency `json:"currency"`
	Items     []LineItem         `json:"items"`
	Locale    constants.Locale   `json:"locale"`
}
