package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/internal/contract"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/repository"
	"github.com/hsakoda/contract-analyzer/internal/utils"
)

// Config holds thresholds for the analysis stage.
type Config struct {
	MinConfidence float32 // default 0.60; below it the job is flagged for review
}

type AnalyzeStage struct {
	Logger        *slog.Logger
	Cfg           Config
	JobsRepo      repository.ExtractJobRepository
	ContractsRepo repository.ContractRepository
}

func NewAnalyzeStage(logger *slog.Logger, cfg Config, jobs repository.ExtractJobRepository, contracts repository.ContractRepository) *AnalyzeStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &AnalyzeStage{Logger: logger, Cfg: cfg, JobsRepo: jobs, ContractsRepo: contracts}
}

// Run executes the analysis passes for an existing job. Preconditions:
// job is TEXT_OK with non-empty text. Effects: writes contract_json and
// needs_review on the job and upserts the flattened contracts row.
func (p *AnalyzeStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusTextOK) || job.Text == nil {
		return job.ID, fmt.Errorf("job not ready for analysis: status=%v text_empty=%t", job.Status, job.Text == nil)
	}

	p.Logger.Info("contract analysis start", "job_id", job.ID, "document_id", job.DocumentID, "text_bytes", len(*job.Text))

	info := contract.Extract(*job.Text)

	raw, err := json.Marshal(info)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("encode contract info: %w", err)
	}
	if err := contract.ValidateJSONAgainstSchema(contract.BuildContractInfoJSONSchema(), raw); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("contract info invalid: %w", err)
	}

	needsReview := p.needsReview(job.Confidence, info)

	req := buildContractRow(job.DocumentID, info)
	rec, err := p.ContractsRepo.Upsert(ctx, req)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("upsert contract: %w", err)
	}

	if err := p.JobsRepo.FinishAnalyzed(ctx, job.ID, raw, needsReview); err != nil {
		return job.ID, err
	}

	p.Logger.Info("contract analyzed",
		"job_id", job.ID, "contract_id", rec.ID,
		"parties", len(info.Parties),
		"dates", len(info.Dates.AllDates),
		"amounts", len(info.Amounts),
		"clauses", len(info.Clauses),
		"needs_review", needsReview,
	)
	return job.ID, nil
}

func (p *AnalyzeStage) needsReview(confidence *float32, info entity.ContractInfo) bool {
	if len(info.Parties) == 0 || info.Dates.ContractDate == nil {
		return true
	}
	if confidence != nil && *confidence > 0 && *confidence < p.Cfg.MinConfidence {
		return true
	}
	return false
}

// buildContractRow flattens the structured extraction into the summary
// row. The representative amount is the largest one found; the row
// carries that amount's currency.
func buildContractRow(documentID uuid.UUID, info entity.ContractInfo) *repository.UpsertContractRequest {
	req := &repository.UpsertContractRequest{
		DocumentID:  documentID,
		ClauseCount: len(info.Clauses),
	}
	if len(info.Parties) > 0 {
		req.PartyA = info.Parties[0].Name
	}
	if len(info.Parties) > 1 {
		req.PartyB = info.Parties[1].Name
	}
	if d := info.Dates.ContractDate; d != nil {
		if t, err := utils.ParseYMD(d.Date); err == nil {
			req.ContractDate = &t
		}
	}
	if d := info.Dates.ExpirationDate; d != nil {
		if t, err := utils.ParseYMD(d.Date); err == nil {
			req.ExpirationDate = &t
		}
	}
	for _, a := range info.Amounts {
		if a.Value > req.TotalAmount {
			req.TotalAmount = a.Value
			req.CurrencyCode = a.Currency
		}
	}
	return req
}
