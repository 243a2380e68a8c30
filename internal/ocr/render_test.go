package ocr

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
)

// fakeRunner simulates pdftoppm by writing numbered PNG files next to
// the output prefix it is handed.
type fakeRunner struct {
	pages   int
	err     error
	gotArgs []string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.gotArgs = append([]string{name}, args...)
	if r.err != nil {
		return nil, []byte("boom"), r.err
	}
	prefix := args[len(args)-1]
	for i := 1; i <= r.pages; i++ {
		if err := os.WriteFile(prefix+"-"+strconv.Itoa(i)+".png", []byte("png"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func TestRenderReturnsPagesInOrder(t *testing.T) {
	runner := &fakeRunner{pages: 3}
	r := NewRenderer("pdftoppm", 300, 0, runner, nil)

	images, err := r.Render(context.Background(), "in.pdf", t.TempDir())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("images = %v", images)
	}
	if runner.gotArgs[0] != "pdftoppm" || runner.gotArgs[1] != "-r" || runner.gotArgs[2] != "300" || runner.gotArgs[3] != "-png" {
		t.Fatalf("args = %v", runner.gotArgs)
	}
}

func TestRenderAppliesPageCap(t *testing.T) {
	r := NewRenderer("", 0, 2, &fakeRunner{pages: 5}, nil)

	images, err := r.Render(context.Background(), "in.pdf", t.TempDir())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("images = %v, want cap of 2", images)
	}
}

func TestRenderCommandFailure(t *testing.T) {
	r := NewRenderer("", 0, 0, &fakeRunner{err: errors.New("exit 1")}, nil)

	if _, err := r.Render(context.Background(), "in.pdf", t.TempDir()); err == nil {
		t.Fatal("expected error when pdftoppm fails")
	}
}

func TestRenderNoOutput(t *testing.T) {
	r := NewRenderer("", 0, 0, &fakeRunner{pages: 0}, nil)

	if _, err := r.Render(context.Background(), "in.pdf", t.TempDir()); err == nil {
		t.Fatal("expected error when no pages were rendered")
	}
}
