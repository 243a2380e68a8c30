// Package pipeline coordinates the two stages of document processing:
// text recovery (the extraction chain) and contract analysis (the
// structured field passes). Each stage records its progress on the
// extract_jobs row so a crash leaves an inspectable trail.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/repository"
	"github.com/hsakoda/contract-analyzer/internal/storage"
)

// TextExtractor is the extraction chain as the pipeline sees it.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (entity.ExtractedDocument, error)
}

type ExtractStage struct {
	DocsRepo  repository.DocumentRepository
	JobsRepo  repository.ExtractJobRepository
	Fetcher   storage.Fetcher
	Extractor TextExtractor
	Logger    *slog.Logger
}

func NewExtractStage(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, ex TextExtractor, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{
		DocsRepo:  docs,
		JobsRepo:  jobs,
		Fetcher:   storage.NewFSFetcher(logger),
		Extractor: ex,
		Logger:    logger,
	}
}

// Run starts an extract job, runs the recovery chain and persists the
// recovered text. The analysis stage is NOT called here.
func (p *ExtractStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, entity.ExtractedDocument, error) {
	row, err := p.DocsRepo.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, entity.ExtractedDocument{}, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(row.FileExt)
	if format == "" {
		return uuid.Nil, entity.ExtractedDocument{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}

	localPath, err := p.Fetcher.Fetch(ctx, row.SourcePath)
	if err != nil {
		return uuid.Nil, entity.ExtractedDocument{}, fmt.Errorf("fetch source: %w", err)
	}

	job, err := p.JobsRepo.Start(ctx, row.ID, format)
	if err != nil {
		return uuid.Nil, entity.ExtractedDocument{}, err
	}
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, entity.ExtractedDocument{}, err
	}

	res, err := p.Extractor.Extract(ctx, localPath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}
	if res.Empty() {
		msg := res.Metadata["error"]
		if msg == "" {
			msg = "no text recovered"
		}
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, msg)
		return job.ID, res, fmt.Errorf("text recovery exhausted: %s", msg)
	}

	method := res.Metadata["method"]
	if err := p.JobsRepo.FinishTextOK(ctx, job.ID, res.Text, method, len(res.Pages), float32(res.Confidence)); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}
