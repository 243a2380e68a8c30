package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hsakoda/contract-analyzer/internal/common"
)

func writeImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.png")
	if err := os.WriteFile(path, []byte("not-really-a-png"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testClient(endpoint string) *Client {
	return NewClient(common.VisionConfig{
		Endpoint:      endpoint,
		APIKey:        "test-key",
		LanguageHints: []string{"ja", "en"},
		Timeout:       5 * time.Second,
	}, nil)
}

func TestRecognizeSuccess(t *testing.T) {
	var gotReq annotateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key, url %q", r.URL.String())
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := annotateResponse{Responses: []imageResponse{{
			FullTextAnnotation: &TextAnnotation{
				Text: "業務委託契約書",
				Pages: []AnnotationPage{{Blocks: []Block{{Paragraphs: []Paragraph{{
					Words: []Word{word(0.95, "業", "務", "委", "託", "契", "約", "書")},
				}}}}}},
			},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).Recognize(context.Background(), writeImage(t))
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if res.Text != "業務委託契約書" {
		t.Fatalf("text = %q", res.Text)
	}
	if res.Confidence != 0.95 {
		t.Fatalf("confidence = %v", res.Confidence)
	}

	if len(gotReq.Requests) != 1 {
		t.Fatalf("requests = %d", len(gotReq.Requests))
	}
	req := gotReq.Requests[0]
	if req.Features[0].Type != "DOCUMENT_TEXT_DETECTION" {
		t.Fatalf("feature = %q", req.Features[0].Type)
	}
	if req.ImageContext == nil || req.ImageContext.LanguageHints[0] != "ja" {
		t.Fatalf("imageContext = %+v", req.ImageContext)
	}
	decoded, err := base64.StdEncoding.DecodeString(req.Image.Content)
	if err != nil || string(decoded) != "not-really-a-png" {
		t.Fatalf("image content round-trip failed: %v %q", err, decoded)
	}
}

func TestRecognizeAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := annotateResponse{Responses: []imageResponse{{
			Error: &rpcStatus{Code: 7, Message: "API key not valid"},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Recognize(context.Background(), writeImage(t))
	if err == nil {
		t.Fatal("expected error for API-level failure")
	}
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VISION_API_ERROR" {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("error does not carry service message: %v", err)
	}
}

func TestRecognizeHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Recognize(context.Background(), writeImage(t))
	var appErr *common.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VISION_HTTP_ERROR" {
		t.Fatalf("error = %v", err)
	}
}

func TestRecognizeNoText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(annotateResponse{Responses: []imageResponse{{}}})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Recognize(context.Background(), writeImage(t))
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("error = %v, want ErrNoText", err)
	}
}

func TestRecognizeMissingFile(t *testing.T) {
	_, err := testClient("http://127.0.0.1:0").Recognize(context.Background(), "/no/such/image.png")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
