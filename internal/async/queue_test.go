package async

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	err  error

	started chan struct{} // closed-once signal that a job was picked up
	release chan struct{} // workers block here until the test releases them
}

func (p *countingProcessor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	if p.started != nil {
		select {
		case p.started <- struct{}{}:
		default:
		}
	}
	if p.release != nil {
		<-p.release
	}
	p.mu.Lock()
	p.seen = append(p.seen, documentID)
	p.mu.Unlock()
	return uuid.New(), p.err
}

func (p *countingProcessor) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.seen)
}

func TestQueueProcessesJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, nil, WithWorkers(2), WithQueueSize(16))

	for i := 0; i < 8; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := proc.count(); got != 8 {
		t.Fatalf("processed %d jobs, want 8", got)
	}
}

func TestQueueKeepsDrainingAfterFailure(t *testing.T) {
	proc := &countingProcessor{err: errors.New("boom")}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(16))

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	if got := proc.count(); got != 3 {
		t.Fatalf("processed %d jobs, want 3", got)
	}
}

func TestQueueFull(t *testing.T) {
	proc := &countingProcessor{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	q := NewProcessorQueue(proc, nil, WithWorkers(1), WithQueueSize(1))

	// First job is picked up by the single worker and parks on release.
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue 1: %v", err)
	}
	select {
	case <-proc.started:
	case <-time.After(5 * time.Second):
		t.Fatal("worker never picked up the first job")
	}

	// Second fills the buffer, third must be rejected.
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); err != nil {
		t.Fatalf("Enqueue 2: %v", err)
	}
	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Enqueue 3 = %v, want ErrQueueFull", err)
	}

	close(proc.release)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
}

func TestQueueClosed(t *testing.T) {
	q := NewProcessorQueue(&countingProcessor{}, nil, WithWorkers(1))
	q.Shutdown(context.Background())

	if err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}); !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("Enqueue after shutdown = %v, want ErrQueueClosed", err)
	}

	// Second shutdown is a no-op, not a double close.
	q.Shutdown(context.Background())
}
