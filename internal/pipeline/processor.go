package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates text recovery then contract analysis.
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Analyze *AnalyzeStage
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, analyze *AnalyzeStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: extract, Analyze: analyze}
}

// ProcessDocument runs text recovery for a document (creating and
// advancing an extract job), then runs contract analysis on the
// resulting job. Returns the job ID started by the first stage.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	jobID, res, err := p.Extract.Run(ctx, documentID)
	if err != nil {
		p.Logger.Error("processor.extract.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.extract.ok",
		"document_id", documentID,
		"job_id", jobID,
		"method", res.Metadata["method"],
		"pages", len(res.Pages),
		"confidence", res.Confidence,
	)

	if _, err := p.Analyze.Run(ctx, jobID); err != nil {
		p.Logger.Error("processor.analyze.failed", "job_id", jobID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.analyze.ok", "job_id", jobID)
	return jobID, nil
}
