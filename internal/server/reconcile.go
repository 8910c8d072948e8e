package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	reconpb "github.com/petarmilev/invoice-recon/gen/proto/recon/v1"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/export"
	"github.com/petarmilev/invoice-recon/internal/recon"
	"github.com/petarmilev/invoice-recon/internal/utils"
)

type ReconcileService struct {
	reconpb.UnimplementedReconcileServiceServer
	recon  *recon.Service
	export *export.Service
	logger *slog.Logger
}

func NewReconcileService(reconSvc *recon.Service, exportSvc *export.Service, logger *slog.Logger) *ReconcileService {
	return &ReconcileService{recon: reconSvc, export: exportSvc, logger: logger}
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func (s *ReconcileService) ReconcilePair(ctx context.Context, req *reconpb.ReconcilePairRequest) (*reconpb.ReconcilePairResponse, error) {
	orderID, err := parseID(req.GetOrderId(), "order_id")
	if err != nil {
		return nil, err
	}
	invoiceID, err := parseID(req.GetInvoiceId(), "invoice_id")
	if err != nil {
		return nil, err
	}

	view, orderTotals, invoiceTotals, err := s.recon.Reconcile(ctx, orderID, invoiceID)
	if err != nil {
		s.logger.Error("reconciliation failed", "order_id", orderID, "invoice_id", invoiceID, "error", err)
		return nil, common.StatusFromError(err)
	}
	s.logger.Info("pair reconciled",
		"pair_id", view.Pair.ID,
		"final_status", view.Summary.FinalStatus,
		"results", len(view.Validations))

	return &reconpb.ReconcilePairResponse{
		View:          utils.ToPBPairView(view),
		OrderTotals:   utils.ToPBTotals(orderTotals),
		InvoiceTotals: utils.ToPBTotals(invoiceTotals),
	}, nil
}

func (s *ReconcileService) ListPairs(ctx context.Context, _ *reconpb.ListPairsRequest) (*reconpb.ListPairsResponse, error) {
	views, err := s.recon.ListViews(ctx)
	if err != nil {
		s.logger.Error("failed to list pairs", "error", err)
		return nil, common.StatusFromError(err)
	}
	out := make([]*reconpb.PairView, 0, len(views))
	for _, v := range views {
		out = append(out, utils.ToPBPairView(v))
	}
	return &reconpb.ListPairsResponse{Views: out}, nil
}

func (s *ReconcileService) ExportReport(ctx context.Context, req *reconpb.ExportReportRequest) (*reconpb.ExportReportResponse, error) {
	pairID, err := parseID(req.GetPairId(), "pair_id")
	if err != nil {
		return nil, err
	}
	xlsx, err := s.export.ExportReportXLSX(ctx, pairID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "pair_id", pairID, "error", err)
		return nil, common.StatusFromError(err)
	}
	return &reconpb.ExportReportResponse{Xlsx: xlsx}, nil
}
