package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/constants"
)

// Document represents a persisted order or invoice for data transfer
// between layers. Immutable after submission.
type Document struct {
	ID        uuid.UUID              `json:"id"`
	Type      constants.DocumentType `json:"type"`
	DocNumber *string                `json:"doc_number,omitempty"`
	DocDate   *string                `json:"doc_date,omitempty"`
	DueDate   *string                `json:"due_date,omitempty"`
	Supplier  *string                `json:"supplier,omitempty"`
	Currency  constants.Currency     `json:"currency"`
	CreatedAt time.Time              `json:"created_at"`
	Items     []LineItem             `json:"items"`
	Files     []FileRef              `json:"files,omitempty"`
}

// FileRef points at an uploaded source file stored by the storage backend.
type FileRef struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"`
	StoragePath string    `json:"storage_path"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
