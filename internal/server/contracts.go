package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contractspb "github.com/hsakoda/contract-analyzer/gen/proto/contracts/v1"
	"github.com/hsakoda/contract-analyzer/internal/async"
	"github.com/hsakoda/contract-analyzer/internal/common"
	"github.com/hsakoda/contract-analyzer/internal/ingest"
	"github.com/hsakoda/contract-analyzer/internal/pipeline"
	"github.com/hsakoda/contract-analyzer/internal/repository"
	"github.com/hsakoda/contract-analyzer/internal/utils"
)

type ContractsService struct {
	contractspb.UnimplementedContractsServiceServer
	ingestor      ingest.Ingestor
	queue         async.Queue
	processor     *pipeline.Processor
	jobsRepo      repository.ExtractJobRepository
	contractsRepo repository.ContractRepository
	logger        *slog.Logger
}

func NewContractsService(
	ing ingest.Ingestor,
	queue async.Queue,
	proc *pipeline.Processor,
	jobs repository.ExtractJobRepository,
	contracts repository.ContractRepository,
	logger *slog.Logger,
) *ContractsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContractsService{
		ingestor:      ing,
		queue:         queue,
		processor:     proc,
		jobsRepo:      jobs,
		contractsRepo: contracts,
		logger:        logger,
	}
}

// IngestDocument registers a file and queues it for processing.
func (s *ContractsService) IngestDocument(ctx context.Context, req *contractspb.IngestDocumentRequest) (*contractspb.IngestDocumentResponse, error) {
	v := common.NewValidator().Field("path", req.GetPath(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("ingest request missing path")
		return nil, err
	}
	path := strings.TrimSpace(req.GetPath())

	s.logger.Info("starting document ingest", "path", path)
	doc, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("document ingest succeeded", "document_id", doc.ID, "format", doc.Format)

	resp := &contractspb.IngestDocumentResponse{Document: utils.ToPBDocument(doc)}
	if err := s.queue.Enqueue(ctx, async.Job{DocumentID: doc.ID}); err != nil {
		s.logger.Error("enqueue failed", "document_id", doc.ID, "err", err)
		resp.Error = err.Error()
	}
	return resp, nil
}

// ExtractDocument runs the full pipeline synchronously and returns the
// finished job.
func (s *ContractsService) ExtractDocument(ctx context.Context, req *contractspb.ExtractDocumentRequest) (*contractspb.ExtractDocumentResponse, error) {
	v := common.NewValidator().
		Field("document_id", req.GetDocumentId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid extract request", "document_id", req.GetDocumentId())
		return nil, err
	}
	documentID, _ := uuid.Parse(req.GetDocumentId())

	jobID, procErr := s.processor.ProcessDocument(ctx, documentID)
	if jobID == uuid.Nil {
		return nil, status.Errorf(codes.InvalidArgument, "process: %v", procErr)
	}

	// The job row records the outcome even when processing failed.
	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	if procErr != nil {
		s.logger.Warn("processing finished with failure", "job_id", jobID, "err", procErr)
	}
	return &contractspb.ExtractDocumentResponse{Job: utils.ToPBExtractJob(utils.ToExtractJob(job))}, nil
}

// GetExtraction returns the job together with its structured output.
func (s *ContractsService) GetExtraction(ctx context.Context, req *contractspb.GetExtractionRequest) (*contractspb.GetExtractionResponse, error) {
	v := common.NewValidator().
		Field("job_id", req.GetJobId(), common.Required, common.UUID)
	if err := common.ValidateAndReturnError(v); err != nil {
		s.logger.Error("invalid get extraction request", "job_id", req.GetJobId())
		return nil, err
	}
	jobID, _ := uuid.Parse(req.GetJobId())

	job, err := s.jobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "job %s not found", jobID)
	}
	return &contractspb.GetExtractionResponse{
		Job:          utils.ToPBExtractJob(utils.ToExtractJob(job)),
		ContractJson: job.ContractJSON,
	}, nil
}

func (s *ContractsService) ListContracts(ctx context.Context, req *contractspb.ListContractsRequest) (*contractspb.ListContractsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		s.logger.Error("invalid date window", "from", req.GetFromDate(), "to", req.GetToDate(), "error", err)
		return nil, err
	}

	s.logger.Info("listing contracts", "from_date", fromDate, "to_date", toDate)
	rows, err := s.contractsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list contracts: %v", err)
	}

	out := make([]*contractspb.Contract, 0, len(rows))
	for _, c := range rows {
		out = append(out, utils.ToPBContract(c))
	}
	return &contractspb.ListContractsResponse{Contracts: out}, nil
}

// parseDateWindow parses optional YYYY-MM-DD bounds.
func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, status.Errorf(codes.InvalidArgument, "from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, status.Errorf(codes.InvalidArgument, "to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}
