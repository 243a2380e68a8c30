// runextract runs the text recovery chain and the contract analysis
// passes against a single file and prints the structured result as
// JSON. No database required.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hsakoda/contract-analyzer/internal/common"
	"github.com/hsakoda/contract-analyzer/internal/contract"
	"github.com/hsakoda/contract-analyzer/internal/ocr"
	"github.com/hsakoda/contract-analyzer/internal/vision"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <file>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	recognizer := vision.NewClient(cfg.Vision, logger)
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:         cfg.OCR.Pdftoppm,
		DPI:              cfg.OCR.DPI,
		MaxPages:         cfg.OCR.MaxPages,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, recognizer, logger)

	start := time.Now()
	doc, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text recovery failed", "path", path, "error", err)
		os.Exit(1)
	}
	if doc.Empty() {
		logger.Error("no text recovered", "path", path, "detail", doc.Metadata["error"])
		os.Exit(1)
	}
	logger.Info("text recovered",
		"method", doc.Metadata["method"],
		"pages", len(doc.Pages),
		"confidence", doc.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	info := contract.Extract(doc.Text)

	result := map[string]any{
		"method":     doc.Metadata["method"],
		"pages":      len(doc.Pages),
		"confidence": doc.Confidence,
		"contract":   info,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
