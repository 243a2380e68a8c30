package ocr

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hsakoda/contract-analyzer/internal/entity"
)

type fakeStage struct {
	name  string
	doc   entity.ExtractedDocument
	err   error
	calls int
}

func (s *fakeStage) Name() string { return s.name }

func (s *fakeStage) Attempt(ctx context.Context, path string) (entity.ExtractedDocument, error) {
	s.calls++
	return s.doc, s.err
}

func stageDoc(method, text string, conf float64) entity.ExtractedDocument {
	return entity.ExtractedDocument{
		Text:       text,
		Pages:      []entity.Page{{PageNumber: 1, Text: text, Method: method}},
		Confidence: conf,
	}
}

func chainExtractor(stages ...Stage) *Extractor {
	return &Extractor{pdfStages: stages, logger: slog.Default()}
}

func TestExtractFirstSuccessShortCircuits(t *testing.T) {
	first := &fakeStage{name: MethodPDFText, doc: stageDoc(MethodPDFText, "本契約", 0.90)}
	second := &fakeStage{name: MethodPDFLayout}

	doc, err := chainExtractor(first, second).Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Text != "本契約" || doc.Confidence != 0.90 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Metadata["method"] != MethodPDFText {
		t.Fatalf("method = %q", doc.Metadata["method"])
	}
	if second.calls != 0 {
		t.Fatal("chain did not short-circuit")
	}
}

func TestExtractFallsThroughOnError(t *testing.T) {
	first := &fakeStage{name: MethodPDFText, err: errors.New("xref broken")}
	second := &fakeStage{name: MethodPDFLayout, doc: stageDoc(MethodPDFLayout, "第1条", 0.85)}

	doc, err := chainExtractor(first, second).Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Metadata["method"] != MethodPDFLayout || doc.Confidence != 0.85 {
		t.Fatalf("doc = %+v", doc)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("calls = %d, %d", first.calls, second.calls)
	}
}

func TestExtractFallsThroughOnEmptyResult(t *testing.T) {
	// Clean run that recovered nothing is treated like a failure.
	first := &fakeStage{name: MethodPDFText, doc: entity.ExtractedDocument{}}
	second := &fakeStage{name: MethodVision, doc: stageDoc(MethodVision, "契約期間", 0.71)}

	doc, err := chainExtractor(first, second).Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Metadata["method"] != MethodVision {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestExtractExhaustionReturnsEmptyWithLastError(t *testing.T) {
	first := &fakeStage{name: MethodPDFText, err: errors.New("first failure")}
	second := &fakeStage{name: MethodVision, err: errors.New("quota exceeded")}

	doc, err := chainExtractor(first, second).Extract(context.Background(), "doc.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !doc.Empty() || doc.Confidence != 0 {
		t.Fatalf("doc = %+v, want empty with confidence 0", doc)
	}
	if doc.Metadata["error"] != "quota exceeded" {
		t.Fatalf("metadata = %+v", doc.Metadata)
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	stage := &fakeStage{name: MethodPDFText}

	_, err := chainExtractor(stage).Extract(context.Background(), "notes.docx")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if stage.calls != 0 {
		t.Fatal("stage ran for unsupported extension")
	}
}

func TestExtractCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stage := &fakeStage{name: MethodPDFText, doc: stageDoc(MethodPDFText, "x", 0.9)}
	_, err := chainExtractor(stage).Extract(ctx, "doc.pdf")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestExtractPreflightFailureShortCircuits(t *testing.T) {
	stage := &fakeStage{name: MethodPDFText, doc: stageDoc(MethodPDFText, "x", 0.9)}
	e := chainExtractor(stage)
	e.preflight = func(path string) (int, error) {
		return 0, errors.New("pdf validation: xref table missing")
	}

	doc, err := e.Extract(context.Background(), "broken.pdf")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !doc.Empty() {
		t.Fatalf("doc = %+v, want empty", doc)
	}
	if doc.Metadata["error"] != "pdf validation: xref table missing" {
		t.Fatalf("metadata = %+v", doc.Metadata)
	}
	if stage.calls != 0 {
		t.Fatal("chain ran for a file that failed preflight")
	}
}

func TestNewExtractorDefaults(t *testing.T) {
	e := NewExtractor(Config{}, nil, nil)

	if e.cfg.Pdftoppm != "pdftoppm" || e.cfg.DPI != 300 {
		t.Fatalf("cfg = %+v", e.cfg)
	}
	if e.preflight == nil {
		t.Fatal("preflight not wired")
	}
	if len(e.pdfStages) != 3 || len(e.imageStages) != 1 {
		t.Fatalf("stages = %d pdf, %d image", len(e.pdfStages), len(e.imageStages))
	}
	if e.pdfStages[0].Name() != MethodPDFText ||
		e.pdfStages[1].Name() != MethodPDFLayout ||
		e.pdfStages[2].Name() != MethodVision {
		t.Fatal("pdf chain out of order")
	}
}

func TestJoinPages(t *testing.T) {
	got := joinPages([]entity.Page{
		{PageNumber: 1, Text: "第1条"},
		{PageNumber: 2, Text: "第2条"},
	})
	want := "--- Page 1 ---\n第1条\n\n--- Page 2 ---\n第2条"
	if got != want {
		t.Fatalf("joinPages = %q, want %q", got, want)
	}
}
