package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/constants"
	"github.com/petarmilev/invoice-recon/gen/ent"
	entdoc "github.com/petarmilev/invoice-recon/gen/ent/document"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/utils"
)

// CreateDocumentRequest wraps everything needed to persist a submitted
// document: the (possibly human-corrected) extracted fields, its items and
// the uploaded file references. The document is immutable afterwards.
type CreateDocumentRequest struct {
	Type      constants.DocumentType
	DocNumber string
	DocDate   string
	DueDate   string
	Supplier  string
	Currency  constants.Currency
	Items     []entity.LineItem
	Files     []entity.FileRef
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	// GetByID loads a document with its items and files. Returns
	// common.ErrNotFound when the id does not exist or the stored type
	// differs from want.
	GetByID(ctx context.Context, id uuid.UUID, want constants.DocumentType) (*entity.Document, error)
	ListByType(ctx context.Context, docType constants.DocumentType) ([]*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin tx")
	}

	builder := tx.Document.Create().
		SetType(string(req.Type)).
		SetCurrency(string(req.Currency))
	if req.DocNumber != "" {
		builder = builder.SetDocNumber(req.DocNumber)
	}
	if req.DocDate != "" {
		builder = builder.SetDocDate(req.DocDate)
	}
	if req.DueDate != "" {
		builder = builder.SetDueDate(req.DueDate)
	}
	if req.Supplier != "" {
		builder = builder.SetSupplier(req.Supplier)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create document", "type", req.Type, "error", err)
		return nil, err
	}

	for _, it := range req.Items {
		_, err = tx.LineItem.Create().
			SetDocumentID(doc.ID).
			SetName(it.Name).
			SetQty(it.Qty).
			SetUnitPrice(it.UnitPrice).
			SetVatPercent(it.VATPercent).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create line item", "document_id", doc.ID, "name", it.Name, "error", err)
			return nil, err
		}
	}
	for _, f := range req.Files {
		_, err = tx.DocumentFile.Create().
			SetDocumentID(doc.ID).
			SetFileName(f.FileName).
			SetFileType(f.FileType).
			SetStoragePath(f.StoragePath).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create document file", "document_id", doc.ID, "file_name", f.FileName, "error", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit document")
	}
	r.logger.Info("document created", "id", doc.ID, "type", req.Type, "items", len(req.Items))
	return r.GetByID(ctx, doc.ID, req.Type)
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID, want constants.DocumentType) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(entdoc.ID(id)).
		WithItems().
		WithFiles().
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("document %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get document", "id", id, "error", err)
		return nil, err
	}
	if row.Type != string(want) {
		return nil, fmt.Errorf("document %s is not a %s: %w", id, want, common.ErrNotFound)
	}
	return utils.ToDocument(row), nil
}

func (r *documentRepo) ListByType(ctx context.Context, docType constants.DocumentType) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.Type(string(docType))).
		WithItems().
		WithFiles().
		Order(entdoc.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "type", docType, "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(rows))
	for i, row := range rows {
		result[i] = utils.ToDocument(row)
	}
	return result, nil
}
