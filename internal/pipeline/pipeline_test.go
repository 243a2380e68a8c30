package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/constants"
	"github.com/hsakoda/contract-analyzer/gen/ent"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/repository"
)

type fakeDocsRepo struct {
	doc *ent.Document
	err error
}

func (f *fakeDocsRepo) Create(ctx context.Context, sourceRef, sourcePath, fileExt, format string) (*ent.Document, error) {
	return f.doc, f.err
}
func (f *fakeDocsRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return f.doc, f.err
}
func (f *fakeDocsRepo) List(ctx context.Context) ([]*ent.Document, error) {
	return []*ent.Document{f.doc}, f.err
}

type fakeJobsRepo struct {
	job *ent.ExtractJob

	started     bool
	running     bool
	textOK      bool
	analyzed    bool
	failed      bool
	failMessage string
	gotText     string
	gotMethod   string
	gotPages    int
	gotConf     float32
	gotJSON     json.RawMessage
	gotNeedsRev bool
}

func (f *fakeJobsRepo) Start(ctx context.Context, documentID uuid.UUID, format string) (*ent.ExtractJob, error) {
	f.started = true
	return f.job, nil
}

func (f *fakeJobsRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	f.running = true
	return nil
}

func (f *fakeJobsRepo) FinishTextOK(ctx context.Context, jobID uuid.UUID, text, method string, pages int, confidence float32) error {
	f.textOK = true
	f.gotText, f.gotMethod, f.gotPages, f.gotConf = text, method, pages, confidence
	return nil
}

func (f *fakeJobsRepo) FinishAnalyzed(ctx context.Context, jobID uuid.UUID, contractJSON json.RawMessage, needsReview bool) error {
	f.analyzed = true
	f.gotJSON = contractJSON
	f.gotNeedsRev = needsReview
	return nil
}

func (f *fakeJobsRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	f.failed = true
	f.failMessage = message
	return nil
}

func (f *fakeJobsRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, error) {
	return f.job, nil
}

type fakeContractsRepo struct {
	got *repository.UpsertContractRequest
	err error
}

func (f *fakeContractsRepo) Upsert(ctx context.Context, req *repository.UpsertContractRequest) (*entity.Contract, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Contract{ID: uuid.New(), DocumentID: req.DocumentID}, nil
}

func (f *fakeContractsRepo) GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeContractsRepo) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error) {
	return nil, nil
}

type fakeExtractor struct {
	doc entity.ExtractedDocument
	err error
}

func (f *fakeExtractor) Extract(ctx context.Context, path string) (entity.ExtractedDocument, error) {
	return f.doc, f.err
}

// identityFetcher passes the stored path through untouched so tests do
// not need real files on disk.
type identityFetcher struct{}

func (identityFetcher) Fetch(ctx context.Context, ref string) (string, error) {
	return ref, nil
}

func newExtractStage(docs *fakeDocsRepo, jobs *fakeJobsRepo, ex *fakeExtractor) *ExtractStage {
	stage := NewExtractStage(docs, jobs, ex, nil)
	stage.Fetcher = identityFetcher{}
	return stage
}

func newJob(status string, text *string) *ent.ExtractJob {
	return &ent.ExtractJob{
		ID:         uuid.New(),
		DocumentID: uuid.New(),
		Format:     constants.PDF,
		Status:     &status,
		Text:       text,
	}
}

func TestExtractStageHappyPath(t *testing.T) {
	docs := &fakeDocsRepo{doc: &ent.Document{ID: uuid.New(), FileExt: "pdf", SourcePath: "/tmp/a.pdf"}}
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusQueued), nil)}
	ex := &fakeExtractor{doc: entity.ExtractedDocument{
		Text:       "本契約",
		Pages:      []entity.Page{{PageNumber: 1, Text: "本契約", Method: "pdf-text"}},
		Confidence: 0.90,
		Metadata:   map[string]string{"method": "pdf-text"},
	}}

	stage := newExtractStage(docs, jobs, ex)
	jobID, res, err := stage.Run(context.Background(), docs.doc.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if jobID != jobs.job.ID {
		t.Fatalf("jobID = %v", jobID)
	}
	if !jobs.started || !jobs.running || !jobs.textOK || jobs.failed {
		t.Fatalf("jobs transitions = %+v", jobs)
	}
	if jobs.gotMethod != "pdf-text" || jobs.gotPages != 1 || jobs.gotConf != 0.90 {
		t.Fatalf("persisted outcome = %q %d %v", jobs.gotMethod, jobs.gotPages, jobs.gotConf)
	}
	if res.Text != "本契約" {
		t.Fatalf("res = %+v", res)
	}
}

func TestExtractStageChainExhausted(t *testing.T) {
	docs := &fakeDocsRepo{doc: &ent.Document{ID: uuid.New(), FileExt: "pdf", SourcePath: "/tmp/a.pdf"}}
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusQueued), nil)}
	ex := &fakeExtractor{doc: entity.ExtractedDocument{
		Metadata: map[string]string{"error": "quota exceeded"},
	}}

	stage := newExtractStage(docs, jobs, ex)
	_, _, err := stage.Run(context.Background(), docs.doc.ID)
	if err == nil {
		t.Fatal("expected error when chain is exhausted")
	}
	if !jobs.failed || !strings.Contains(jobs.failMessage, "quota exceeded") {
		t.Fatalf("failure not persisted: %+v", jobs)
	}
	if jobs.textOK {
		t.Fatal("TEXT_OK written for an empty result")
	}
}

func TestExtractStageFetchFailure(t *testing.T) {
	docs := &fakeDocsRepo{doc: &ent.Document{ID: uuid.New(), FileExt: "pdf", SourcePath: "/no/such/file.pdf"}}
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusQueued), nil)}

	stage := NewExtractStage(docs, jobs, &fakeExtractor{}, nil)
	_, _, err := stage.Run(context.Background(), docs.doc.ID)
	if err == nil {
		t.Fatal("expected error when the source cannot be fetched")
	}
	if jobs.started {
		t.Fatal("job started for an unfetchable source")
	}
}

func TestExtractStageUnsupportedFormat(t *testing.T) {
	docs := &fakeDocsRepo{doc: &ent.Document{ID: uuid.New(), FileExt: "docx", SourcePath: "/tmp/a.docx"}}
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusQueued), nil)}

	stage := newExtractStage(docs, jobs, &fakeExtractor{})
	_, _, err := stage.Run(context.Background(), docs.doc.ID)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if jobs.started {
		t.Fatal("job started for unsupported format")
	}
}

const analyzableText = `株式会社テスト商事（以下「甲」という。）と、サンプル電気株式会社（以下「乙」という。）は本契約を締結する。

委託料は月額800,000円とし、甲は毎月末日までに支払う。

甲または乙は、相手方が本契約に違反したときは本契約を解除することができる。

本契約は2024年1月15日に締結する。`

func TestAnalyzeStageHappyPath(t *testing.T) {
	text := analyzableText
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusTextOK), &text)}
	contracts := &fakeContractsRepo{}

	stage := NewAnalyzeStage(nil, Config{}, jobs, contracts)
	if _, err := stage.Run(context.Background(), jobs.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !jobs.analyzed || jobs.failed {
		t.Fatalf("jobs transitions = %+v", jobs)
	}
	var decoded entity.ContractInfo
	if err := json.Unmarshal(jobs.gotJSON, &decoded); err != nil {
		t.Fatalf("persisted JSON invalid: %v", err)
	}
	if len(decoded.Parties) != 2 {
		t.Fatalf("parties = %+v", decoded.Parties)
	}

	if contracts.got == nil {
		t.Fatal("contract row not upserted")
	}
	if contracts.got.PartyA != "株式会社テスト商事" || contracts.got.PartyB != "サンプル電気株式会社" {
		t.Fatalf("parties = %+v", contracts.got)
	}
	if contracts.got.TotalAmount != 800000 || contracts.got.CurrencyCode != "JPY" {
		t.Fatalf("amount = %v %s", contracts.got.TotalAmount, contracts.got.CurrencyCode)
	}
	if contracts.got.ContractDate == nil || contracts.got.ContractDate.Format("2006-01-02") != "2024-01-15" {
		t.Fatalf("contract date = %v", contracts.got.ContractDate)
	}
	if jobs.gotNeedsRev {
		t.Fatal("needs_review set for a clean extraction")
	}
}

func TestAnalyzeStageFlagsLowConfidence(t *testing.T) {
	text := analyzableText
	job := newJob(string(constants.JobStatusTextOK), &text)
	conf := float32(0.30)
	job.Confidence = &conf
	jobs := &fakeJobsRepo{job: job}

	stage := NewAnalyzeStage(nil, Config{MinConfidence: 0.60}, jobs, &fakeContractsRepo{})
	if _, err := stage.Run(context.Background(), job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !jobs.gotNeedsRev {
		t.Fatal("low recovery confidence not flagged for review")
	}
}

func TestAnalyzeStageFlagsMissingFields(t *testing.T) {
	// No party markers and no dates: both review triggers fire.
	text := "これは当事者名も日付も含まない文章です。"
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusTextOK), &text)}

	stage := NewAnalyzeStage(nil, Config{}, jobs, &fakeContractsRepo{})
	if _, err := stage.Run(context.Background(), jobs.job.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !jobs.gotNeedsRev {
		t.Fatal("missing parties/dates not flagged for review")
	}
}

func TestAnalyzeStageRejectsWrongStatus(t *testing.T) {
	text := analyzableText
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusQueued), &text)}

	stage := NewAnalyzeStage(nil, Config{}, jobs, &fakeContractsRepo{})
	if _, err := stage.Run(context.Background(), jobs.job.ID); err == nil {
		t.Fatal("expected error for job not in TEXT_OK")
	}
}

func TestBuildContractRowPicksLargestAmount(t *testing.T) {
	docID := uuid.New()
	info := entity.ContractInfo{
		Amounts: []entity.Amount{
			{Value: 100, Currency: "USD"},
			{Value: 800000, Currency: "JPY"},
			{Value: 5000, Currency: "JPY"},
		},
	}
	req := buildContractRow(docID, info)
	if req.TotalAmount != 800000 || req.CurrencyCode != "JPY" {
		t.Fatalf("req = %+v", req)
	}
	if req.DocumentID != docID {
		t.Fatalf("document id = %v", req.DocumentID)
	}
}

func TestProcessorRunsBothStages(t *testing.T) {
	docs := &fakeDocsRepo{doc: &ent.Document{ID: uuid.New(), FileExt: "pdf", SourcePath: "/tmp/a.pdf"}}
	text := analyzableText
	jobs := &fakeJobsRepo{job: newJob(string(constants.JobStatusTextOK), &text)}
	ex := &fakeExtractor{doc: entity.ExtractedDocument{
		Text:       text,
		Pages:      []entity.Page{{PageNumber: 1, Text: text, Method: "pdf-text"}},
		Confidence: 0.90,
		Metadata:   map[string]string{"method": "pdf-text"},
	}}
	contracts := &fakeContractsRepo{}

	proc := NewProcessor(nil,
		newExtractStage(docs, jobs, ex),
		NewAnalyzeStage(nil, Config{}, jobs, contracts),
	)

	jobID, err := proc.ProcessDocument(context.Background(), docs.doc.ID)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if jobID != jobs.job.ID {
		t.Fatalf("jobID = %v", jobID)
	}
	if !jobs.textOK || !jobs.analyzed {
		t.Fatalf("stages incomplete: %+v", jobs)
	}
}
