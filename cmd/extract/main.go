package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/petarmilev/invoice-recon/internal/common"
	"github.com/petarmilev/invoice-recon/internal/extract"
)

// Runs the extraction pipeline over a plain-text file (OCR output) and
// prints the structured document as JSON. Handy for tuning the heuristics
// against real scans without a running server.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "extract <text-file> [confidence]")
		os.Exit(2)
	}

	confidence := 100.0
	if len(os.Args) == 3 {
		c, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil || c < 0 || c > 100 {
			logger.Error("confidence must be a number in [0,100]", "arg", os.Args[2])
			os.Exit(2)
		}
		confidence = c
	}

	text, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("read input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	pipeline := extract.NewPipeline(cfg.Extract, logger)

	start := time.Now()
	doc := pipeline.Extract(string(text), confidence)
	dur := time.Since(start)

	logger.Info("extraction OK",
		"locale", doc.Locale,
		"items", len(doc.Items),
		"duration_ms", dur.Milliseconds(),
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
