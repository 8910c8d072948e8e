package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	reconpb "github.com/petarmilev/invoice-recon/gen/proto/recon/v1"
	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/export"
	"github.com/petarmilev/invoice-recon/internal/extract"
	"github.com/petarmilev/invoice-recon/internal/recon"
	repo "github.com/petarmilev/invoice-recon/internal/repository"
	svc "github.com/petarmilev/invoice-recon/internal/server"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbRes, err := repo.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer dbRes.Cleanup()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	documentsRepo := repo.NewDocumentRepository(dbRes.Client, logger)
	pairsRepo := repo.NewPairRepository(dbRes.Client, logger)
	validationsRepo := repo.NewValidationRepository(dbRes.Client, logger)

	pipeline := extract.NewPipeline(cfg.Extract, logger)
	reconSvc := recon.NewService(documentsRepo, pairsRepo, validationsRepo, logger)
	exportSvc := export.NewService(reconSvc, logger)

	reconpb.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentService(documentsRepo, logger))
	reconpb.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionService(pipeline, logger))
	reconpb.RegisterReconcileServiceServer(grpcServer, svc.NewReconcileService(reconSvc, exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("invoice-recon listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}
}
