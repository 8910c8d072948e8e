package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/petarmilev/invoice-recon/constants"
	reconpb "github.com/petarmilev/invoice-recon/gen/proto/recon/v1"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/repository"
	"github.com/petarmilev/invoice-recon/internal/utils"
)

type DocumentService struct {
	reconpb.UnimplementedDocumentsServiceServer
	documents repository.DocumentRepository
	schema    map[string]any
	logger    *slog.Logger
}

func NewDocumentService(documents repository.DocumentRepository, logger *slog.Logger) *DocumentService {
	return &DocumentService{
		documents: documents,
		schema:    BuildCreateDocumentSchema(),
		logger:    logger,
	}
}

func (s *DocumentService) CreateDocument(ctx context.Context, req *reconpb.CreateDocumentRequest) (*reconpb.CreateDocumentResponse, error) {
	docType := constants.DocumentType(strings.ToUpper(strings.TrimSpace(req.GetType())))
	if docType != constants.DocumentTypeOrder && docType != constants.DocumentTypeInvoice {
		s.logger.Error("create document request with unknown type", "type", req.GetType())
		return nil, common.InvalidArgumentErrorf("type must be ORDER or INVOICE, got %q", req.GetType())
	}

	currency, ok := constants.CanonicalizeCurrency(req.GetCurrency())
	if !ok {
		s.logger.Error("create document request with unknown currency", "currency", req.GetCurrency())
		return nil, common.InvalidArgumentErrorf("unsupported currency %q", req.GetCurrency())
	}

	payload, err := protojson.Marshal(req)
	if err != nil {
		return nil, common.InternalErrorf("encode request: %v", err)
	}
	if err := ValidateJSONAgainstSchema(s.schema, payload); err != nil {
		s.logger.Error("create document payload rejected", "type", docType, "error", err)
		return nil, common.InvalidArgumentErrorf("invalid document payload: %v", err)
	}

	create := &repository.CreateDocumentRequest{
		Type:      docType,
		DocNumber: strings.TrimSpace(req.GetDocNumber()),
		DocDate:   strings.TrimSpace(req.GetDocDate()),
		DueDate:   strings.TrimSpace(req.GetDueDate()),
		Supplier:  strings.TrimSpace(req.GetSupplier()),
		Currency:  currency,
	}
	for _, it := range req.GetItems() {
		create.Items = append(create.Items, entity.LineItem{
			Name:       it.GetName(),
			Qty:        it.GetQty(),
			UnitPrice:  it.GetUnitPrice(),
			VATPercent: it.GetVatPercent(),
		})
	}
	for _, f := range req.GetFiles() {
		ext := constants.NormalizeExt(f.GetFileType())
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil, common.InvalidArgumentErrorf("unsupported file type %q", f.GetFileType())
		}
		create.Files = append(create.Files, entity.FileRef{
			FileName:    f.GetFileName(),
			FileType:    ext,
			StoragePath: f.GetStoragePath(),
		})
	}

	doc, err := s.documents.Create(ctx, create)
	if err != nil {
		s.logger.Error("failed to create document", "type", docType, "error", err)
		return nil, common.StatusFromError(err)
	}
	s.logger.Info("document created", "id", doc.ID, "type", docType, "items", len(doc.Items))
	return &reconpb.CreateDocumentResponse{Document: utils.ToPBDocument(doc)}, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context, req *reconpb.ListDocumentsRequest) (*reconpb.ListDocumentsResponse, error) {
	docType := constants.DocumentType(strings.ToUpper(strings.TrimSpace(req.GetType())))
	if docType != constants.DocumentTypeOrder && docType != constants.DocumentTypeInvoice {
		return nil, common.InvalidArgumentErrorf("type must be ORDER or INVOICE, got %q", req.GetType())
	}

	docs, err := s.documents.ListByType(ctx, docType)
	if err != nil {
		s.logger.Error("failed to list documents", "type", docType, "error", err)
		return nil, common.StatusFromError(err)
	}

	out := make([]*reconpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &reconpb.ListDocumentsResponse{Documents: out}, nil
}
