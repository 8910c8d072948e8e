package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/petarmilev/invoice-recon/internal/async"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/recon"
	repo "github.com/petarmilev/invoice-recon/internal/repository"
)

// Re-validates every known pair. Run after the validation rules or
// tolerances change so stored summaries catch up with the current engine.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbRes, err := repo.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer dbRes.Cleanup()

	documentsRepo := repo.NewDocumentRepository(dbRes.Client, logger)
	pairsRepo := repo.NewPairRepository(dbRes.Client, logger)
	validationsRepo := repo.NewValidationRepository(dbRes.Client, logger)
	reconSvc := recon.NewService(documentsRepo, pairsRepo, validationsRepo, logger)

	pairs, err := pairsRepo.List(ctx)
	if err != nil {
		logger.Error("failed to list pairs", "error", err)
		os.Exit(1)
	}
	if len(pairs) == 0 {
		logger.Info("no pairs to reconcile")
		return
	}

	queue := async.NewQueue(func(ctx context.Context, orderID, invoiceID uuid.UUID) error {
		_, _, _, err := reconSvc.Reconcile(ctx, orderID, invoiceID)
		return err
	}, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(time.Minute),
	)

	start := time.Now()
	for _, pair := range pairs {
		if err := queue.Enqueue(ctx, async.Job{OrderID: pair.OrderID, InvoiceID: pair.InvoiceID}); err != nil {
			logger.Error("enqueue failed", "pair_id", pair.ID, "error", err)
			break
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	queue.Shutdown(shutdownCtx)

	logger.Info("batch reconciliation finished",
		"pairs", len(pairs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
}
