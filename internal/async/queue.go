package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is one reconciliation request: re-validate a single order/invoice pair.
type Job struct {
	OrderID     uuid.UUID
	InvoiceID   uuid.UUID
	SubmittedAt time.Time
}

// ReconcileFunc runs one reconciliation. The queue does not care about the
// result payload, only whether the run succeeded.
type ReconcileFunc func(ctx context.Context, orderID, invoiceID uuid.UUID) error

var ErrQueueClosed = errors.New("queue is shut down")

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.size = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

// Queue fans reconciliation jobs out to a fixed worker pool. Different pairs
// reconcile in parallel; serialization of runs against the same pair is the
// reconciliation service's job, not the queue's.
type Queue struct {
	run     ReconcileFunc
	logger  *slog.Logger
	workers int
	size    int
	timeout time.Duration

	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewQueue(run ReconcileFunc, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		run:     run,
		logger:  logger,
		workers: 4,
		size:    256,
		timeout: time.Minute,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan Job, q.size)
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}
	return q
}

// Enqueue submits a job, blocking while the queue is full. Returns
// ErrQueueClosed after Shutdown, or the context error if ctx ends first.
func (q *Queue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.mu.Unlock()

	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case q.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake and waits for in-flight jobs, up to ctx's deadline.
func (q *Queue) Shutdown(ctx context.Context) {
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
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out with jobs still running")
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for job := range q.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		start := time.Now()
		err := q.run(ctx, job.OrderID, job.InvoiceID)
		cancel()
		if err != nil {
			q.logger.Error("reconciliation job failed",
				"order_id", job.OrderID, "invoice_id", job.InvoiceID,
				"error", err, "elapsed_ms", time.Since(start).Milliseconds())
			continue
		}
		q.logger.Info("reconciliation job done",
			"order_id", job.OrderID, "invoice_id", job.InvoiceID,
			"queued_ms", start.Sub(job.SubmittedAt).Milliseconds(),
			"elapsed_ms", time.Since(start).Milliseconds())
	}
}
