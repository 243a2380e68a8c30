// Package async decouples document ingestion from processing: ingest
// RPCs enqueue, a fixed worker pool drains.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry).
type Job struct {
	DocumentID  uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// DocumentProcessor is the pipeline as the queue sees it.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error)
}

var (
	ErrQueueFull   = errors.New("processing queue full")
	ErrQueueClosed = errors.New("processing queue shut down")
)

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// ProcessorQueue runs ProcessDocument on a bounded channel drained by a
// fixed pool of workers.
type ProcessorQueue struct {
	proc    DocumentProcessor
	logger  *slog.Logger
	workers int
	size    int
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	jobs   chan Job
	wg     sync.WaitGroup
}

func NewProcessorQueue(proc DocumentProcessor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		size:    256,
		timeout: 3 * time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
	return q
}

func (q *ProcessorQueue) worker(id int) {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		start := time.Now()
		jobID, err := q.proc.ProcessDocument(ctx, job.DocumentID)
		cancel()
		if err != nil {
			q.logger.Error("queue.process.failed",
				"worker", id,
				"document_id", job.DocumentID,
				"job_id", jobID,
				"queued_ms", start.Sub(job.SubmittedAt).Milliseconds(),
				"err", err,
			)
			continue
		}
		q.logger.Info("queue.process.ok",
			"worker", id,
			"document_id", job.DocumentID,
			"job_id", jobID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Enqueue submits a job without blocking; a full queue is an error the
// caller surfaces instead of invisible backpressure.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting jobs and waits for in-flight work, bounded
// by ctx.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		q.logger.Info("queue drained")
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out", "err", ctx.Err())
	}
}
