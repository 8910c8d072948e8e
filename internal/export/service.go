package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/petarmilev/invoice-recon/internal/entity"
	"github.com/petarmilev/invoice-recon/internal/recon"
)

// Service is a tiny façade over the reconciliation service that produces
// XLSX bytes for validation reports.
type Service struct {
	recon  *recon.Service
	logger *slog.Logger
}

func NewService(reconSvc *recon.Service, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{recon: reconSvc, logger: logger}
}

// ExportReportXLSX renders the stored validation state of one pair as an
// XLSX workbook: a summary sheet with per-category statuses and a results
// sheet listing every discrepancy.
func (s *Service) ExportReportXLSX(ctx context.Context, pairID uuid.UUID) ([]byte, error) {
	start := time.Now()

	view, err := s.recon.View(ctx, pairID)
	if err != nil {
		return nil, fmt.Errorf("load pair: %w", err)
	}

	f := excelize.NewFile()
	const summarySheet = "Summary"
	const resultsSheet = "Results"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(resultsSheet); err != nil {
		return nil, err
	}

	writeCell := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	writeCell(summarySheet, 1, 1, "Pair ID")
	writeCell(summarySheet, 2, 1, view.Pair.ID.String())
	writeCell(summarySheet, 1, 2, "Order")
	writeCell(summarySheet, 2, 2, documentLabel(view.Order))
	writeCell(summarySheet, 1, 3, "Invoice")
	writeCell(summarySheet, 2, 3, documentLabel(view.Invoice))

	row := 5
	writeCell(summarySheet, 1, row, "Category")
	writeCell(summarySheet, 2, row, "Status")
	row++
	if sum := view.Summary; sum != nil {
		for _, line := range []struct {
			label  string
			status string
		}{
			{"Items", string(sum.ItemsStatus)},
			{"VAT", string(sum.VATStatus)},
			{"Dates", string(sum.DatesStatus)},
			{"Totals", string(sum.TotalsStatus)},
			{"Final", string(sum.FinalStatus)},
		} {
			writeCell(summarySheet, 1, row, line.label)
			writeCell(summarySheet, 2, row, line.status)
			row++
		}
	}

	headers := []string{"Category", "Severity", "Message"}
	for i, h := range headers {
		writeCell(resultsSheet, i+1, 1, h)
	}
	for i, res := range view.Validations {
		writeCell(resultsSheet, 1, i+2, string(res.Category))
		writeCell(resultsSheet, 2, i+2, string(res.Severity))
		writeCell(resultsSheet, 3, i+2, res.Message)
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 14)
	_ = f.SetColWidth(summarySheet, "B", "B", 40)
	_ = f.SetColWidth(resultsSheet, "A", "B", 12)
	_ = f.SetColWidth(resultsSheet, "C", "C", 70)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"pair_id", pairID.String(),
		"rows", len(view.Validations),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func documentLabel(d *entity.Document) string {
	if d == nil {
		return ""
	}
	label := d.ID.String()
	if d.DocNumber != nil && *d.DocNumber != "" {
		label = *d.DocNumber
	}
	if d.Supplier != nil && *d.Supplier != "" {
		label = fmt.Sprintf("%s (%s)", label, *d.Supplier)
	}
	return label
}
