package server

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/gen/ent"
	v1 "github.com/hsakoda/contract-analyzer/gen/proto/contracts/v1"
	"github.com/hsakoda/contract-analyzer/internal/async"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/ingest"
	"github.com/hsakoda/contract-analyzer/internal/repository"
)

type fakeIngestor struct {
	doc *entity.Document
	err error
}

func (f *fakeIngestor) IngestPath(ctx context.Context, path string) (*entity.Document, error) {
	return f.doc, f.err
}

func (f *fakeIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]*entity.Document, ingest.Stats, error) {
	return nil, ingest.Stats{}, errors.New("not implemented")
}

type fakeQueue struct {
	jobs []async.Job
	err  error
}

func (f *fakeQueue) Enqueue(ctx context.Context, job async.Job) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) Shutdown(ctx context.Context) {}

type fakeJobsRepo struct {
	job *ent.ExtractJob
	err error
}

func (f *fakeJobsRepo) Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.ExtractJob, error) {
	return f.job, f.err
}
func (f *fakeJobsRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error { return nil }
func (f *fakeJobsRepo) FinishTextOK(ctx context.Context, jobID uuid.UUID, text, method string, pages int, confidence float32) error {
	return nil
}
func (f *fakeJobsRepo) FinishAnalyzed(ctx context.Context, jobID uuid.UUID, contractJSON json.RawMessage, needsReview bool) error {
	return nil
}
func (f *fakeJobsRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	return nil
}
func (f *fakeJobsRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return f.job, f.err
}

type fakeContractsRepo struct {
	rows    []*entity.Contract
	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeContractsRepo) Upsert(ctx context.Context, req *repository.UpsertContractRequest) (*entity.Contract, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContractsRepo) GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContractsRepo) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error) {
	f.gotFrom, f.gotTo = fromDate, toDate
	return f.rows, nil
}

func TestIngestDocumentRequiresPath(t *testing.T) {
	s := NewContractsService(&fakeIngestor{}, &fakeQueue{}, nil, &fakeJobsRepo{}, &fakeContractsRepo{}, nil)

	if _, err := s.IngestDocument(context.Background(), &v1.IngestDocumentRequest{}); err == nil {
		t.Fatal("empty path accepted")
	}
}

func TestIngestDocumentEnqueues(t *testing.T) {
	doc := &entity.Document{
		ID:         uuid.New(),
		SourceRef:  "keiyaku.pdf",
		SourcePath: "/data/keiyaku.pdf",
		FileExt:    "pdf",
		Format:     constants.PDF,
		UploadedAt: time.Now(),
	}
	q := &fakeQueue{}
	s := NewContractsService(&fakeIngestor{doc: doc}, q, nil, &fakeJobsRepo{}, &fakeContractsRepo{}, nil)

	resp, err := s.IngestDocument(context.Background(), &v1.IngestDocumentRequest{Path: "/data/keiyaku.pdf"})
	if err != nil {
		t.Fatalf("IngestDocument: %v", err)
	}
	if resp.GetError() != "" {
		t.Fatalf("unexpected response error: %q", resp.GetError())
	}
	if resp.GetDocument().GetId() != doc.ID.String() {
		t.Fatalf("document id = %q", resp.GetDocument().GetId())
	}
	if len(q.jobs) != 1 || q.jobs[0].DocumentID != doc.ID {
		t.Fatalf("queue jobs = %+v", q.jobs)
	}
}

func TestIngestDocumentSurvivesFullQueue(t *testing.T) {
	doc := &entity.Document{ID: uuid.New(), FileExt: "pdf", Format: constants.PDF}
	s := NewContractsService(&fakeIngestor{doc: doc}, &fakeQueue{err: async.ErrQueueFull}, nil, &fakeJobsRepo{}, &fakeContractsRepo{}, nil)

	resp, err := s.IngestDocument(context.Background(), &v1.IngestDocumentRequest{Path: "/data/a.pdf"})
	if err != nil {
		t.Fatalf("full queue must not fail the RPC: %v", err)
	}
	if resp.GetError() == "" {
		t.Fatal("full queue not surfaced in the response")
	}
}

func TestExtractDocumentRejectsBadID(t *testing.T) {
	s := NewContractsService(&fakeIngestor{}, &fakeQueue{}, nil, &fakeJobsRepo{}, &fakeContractsRepo{}, nil)

	for _, id := range []string{"", "not-a-uuid"} {
		if _, err := s.ExtractDocument(context.Background(), &v1.ExtractDocumentRequest{DocumentId: id}); err == nil {
			t.Fatalf("document_id %q accepted", id)
		}
	}
}

func TestGetExtraction(t *testing.T) {
	status := string(constants.JobStatusAnalyzed)
	raw := json.RawMessage(`{"parties":[]}`)
	job := &ent.ExtractJob{
		ID:           uuid.New(),
		DocumentID:   uuid.New(),
		Format:       constants.PDF,
		StartedAt:    time.Now(),
		Status:       &status,
		ContractJSON: raw,
	}
	s := NewContractsService(&fakeIngestor{}, &fakeQueue{}, nil, &fakeJobsRepo{job: job}, &fakeContractsRepo{}, nil)

	resp, err := s.GetExtraction(context.Background(), &v1.GetExtractionRequest{JobId: job.ID.String()})
	if err != nil {
		t.Fatalf("GetExtraction: %v", err)
	}
	if resp.GetJob().GetId() != job.ID.String() {
		t.Fatalf("job id = %q", resp.GetJob().GetId())
	}
	if resp.GetJob().GetStatus() != status {
		t.Fatalf("status = %q", resp.GetJob().GetStatus())
	}
	if string(resp.GetContractJson()) != string(raw) {
		t.Fatalf("contract json = %s", resp.GetContractJson())
	}
}

func TestGetExtractionRejectsBadID(t *testing.T) {
	s := NewContractsService(&fakeIngestor{}, &fakeQueue{}, nil, &fakeJobsRepo{}, &fakeContractsRepo{}, nil)

	if _, err := s.GetExtraction(context.Background(), &v1.GetExtractionRequest{JobId: "nope"}); err == nil {
		t.Fatal("bad job id accepted")
	}
}

func TestListContractsWindow(t *testing.T) {
	repo := &fakeContractsRepo{rows: []*entity.Contract{
		{ID: uuid.New(), DocumentID: uuid.New(), PartyA: "株式会社テスト商事", TotalAmount: 800000, CurrencyCode: "JPY"},
	}}
	s := NewContractsService(&fakeIngestor{}, &fakeQueue{}, nil, &fakeJobsRepo{}, repo, nil)

	resp, err := s.ListContracts(context.Background(), &v1.ListContractsRequest{
		FromDate: "2024-01-01",
		ToDate:   "2024-12-31",
	})
	if err != nil {
		t.Fatalf("ListContracts: %v", err)
	}
	if len(resp.GetContracts()) != 1 {
		t.Fatalf("got %d contracts", len(resp.GetContracts()))
	}
	if repo.gotFrom == nil || repo.gotFrom.Format("2006-01-02") != "2024-01-01" {
		t.Fatalf("from = %v", repo.gotFrom)
	}
	if repo.gotTo == nil || repo.gotTo.Format("2006-01-02") != "2024-12-31" {
		t.Fatalf("to = %v", repo.gotTo)
	}
}

func TestParseDateWindow(t *testing.T) {
	from, to, err := parseDateWindow("", "")
	if err != nil || from != nil || to != nil {
		t.Fatalf("empty window: %v %v %v", from, to, err)
	}

	from, to, err = parseDateWindow("2024-01-01", "")
	if err != nil || from == nil || to != nil {
		t.Fatalf("from-only window: %v %v %v", from, to, err)
	}

	if _, _, err = parseDateWindow("01/02/2024", ""); err == nil {
		t.Fatal("non-ISO from_date accepted")
	}
	if _, _, err = parseDateWindow("", "2024-13-01"); err == nil {
		t.Fatal("invalid to_date accepted")
	}
}
