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

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/hsakoda/contract-analyzer/gen/ent"
	v1 "github.com/hsakoda/contract-analyzer/gen/proto/contracts/v1"
	"github.com/hsakoda/contract-analyzer/internal/async"
	"github.com/hsakoda/contract-analyzer/internal/common"
	"github.com/hsakoda/contract-analyzer/internal/export"
	"github.com/hsakoda/contract-analyzer/internal/ingest"
	"github.com/hsakoda/contract-analyzer/internal/ocr"
	"github.com/hsakoda/contract-analyzer/internal/pipeline"
	repo "github.com/hsakoda/contract-analyzer/internal/repository"
	svc "github.com/hsakoda/contract-analyzer/internal/server"
	"github.com/hsakoda/contract-analyzer/internal/vision"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
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
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	docsRepo := repo.NewDocumentRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)

	recognizer := vision.NewClient(cfg.Vision, logger)
	extractor := ocr.NewExtractor(ocr.Config{
		Pdftoppm:         cfg.OCR.Pdftoppm,
		DPI:              cfg.OCR.DPI,
		MaxPages:         cfg.OCR.MaxPages,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
	}, recognizer, logger)

	extractStage := pipeline.NewExtractStage(docsRepo, jobsRepo, extractor, logger)
	analyzeStage := pipeline.NewAnalyzeStage(logger, pipeline.Config{MinConfidence: 0.60}, jobsRepo, contractsRepo)
	processor := pipeline.NewProcessor(logger, extractStage, analyzeStage)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(6),
		async.WithQueueSize(512),
		async.WithProcessTimeout(3*time.Minute),
	)

	ingestor := ingest.NewFSIngestor(docsRepo, logger)
	contractsService := svc.NewContractsService(ingestor, queue, processor, jobsRepo, contractsRepo, logger)
	v1.RegisterContractsServiceServer(grpcServer, contractsService)

	exportService := export.NewService(contractsRepo, logger)
	v1.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportService, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("contract-analyzer listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// openDatabase prefers Postgres, falling back to a local SQLite file
// when no DSN is configured. The pool is nil on the SQLite path.
func openDatabase(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	if cfg.Database.DSN == "" {
		logger.Warn("DB_URL not set, using local sqlite database", "path", cfg.Database.SQLitePath)
		entc, err := repo.OpenSQLite(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			return nil, nil, err
		}
		return entc, nil, nil
	}

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, nil, err
	}
	return entc, pool, nil
}
