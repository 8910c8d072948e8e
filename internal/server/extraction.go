package server

import (
	"context"
	"log/slog"
	"strings"

	reconpb "github.com/petarmilev/invoice-recon/gen/proto/recon/v1"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/extract"
	"github.com/petarmilev/invoice-recon/internal/utils"
)

type ExtractionService struct {
	reconpb.UnimplementedExtractionServiceServer
	pipeline *extract.Pipeline
	logger   *slog.Logger
}

func NewExtractionService(pipeline *extract.Pipeline, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{pipeline: pipeline, logger: logger}
}

func (s *ExtractionService) Extract(_ context.Context, req *reconpb.ExtractRequest) (*reconpb.ExtractResponse, error) {
	if strings.TrimSpace(req.GetText()) == "" {
		return nil, common.InvalidArgumentError("text is required")
	}
	conf := req.GetConfidence()
	if conf < 0 || conf > 100 {
		return nil, common.InvalidArgumentErrorf("confidence must be in [0,100], got %v", conf)
	}

	doc := s.pipeline.Extract(req.GetText(), conf)
	s.logger.Info("text extracted",
		"locale", doc.Locale,
		"confidence", conf,
		"items", len(doc.Items),
		"doc_number", doc.DocNumber)
	return &reconpb.ExtractResponse{Document: utils.ToPBExtracted(doc)}, nil
}
