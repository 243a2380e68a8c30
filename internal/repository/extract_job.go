package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/gen/ent"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishTextOK(ctx context.Context, jobID uuid.UUID, text, method string, pages int, confidence float32) error
	FinishAnalyzed(ctx context.Context, jobID uuid.UUID, contractJSON json.RawMessage, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error)
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishTextOK(ctx context.Context, jobID uuid.UUID, text, method string, pages int, confidence float32) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetText(text).
		SetMethod(method).
		SetPages(pages).
		SetConfidence(confidence).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job text recovered", "job_id", jobID, "method", method, "pages", pages, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishAnalyzed(ctx context.Context, jobID uuid.UUID, contractJSON json.RawMessage, needsReview bool) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetContractJSON(contractJSON).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusAnalyzed)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(ANALYZED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (ANALYZED)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		r.log.Error("extract_job lookup failed", "job_id", jobID, "err", err)
		return nil, err
	}
	return job, nil
}
