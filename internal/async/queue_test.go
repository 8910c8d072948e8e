package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesAllJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make(map[uuid.UUID]int)

	q := NewQueue(func(_ context.Context, orderID, _ uuid.UUID) error {
		mu.Lock()
		seen[orderID]++
		mu.Unlock()
		return nil
	}, discardLogger(), WithWorkers(3), WithQueueSize(16))

	ids := make([]uuid.UUID, 10)
	for i := range ids {
		ids[i] = uuid.New()
		require.NoError(t, q.Enqueue(context.Background(), Job{OrderID: ids[i], InvoiceID: uuid.New()}))
	}
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, seen, 10)
	for _, id := range ids {
		assert.Equal(t, 1, seen[id])
	}
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	q := NewQueue(func(context.Context, uuid.UUID, uuid.UUID) error {
		return nil
	}, discardLogger(), WithWorkers(1))

	q.Shutdown(context.Background())
	err := q.Enqueue(context.Background(), Job{OrderID: uuid.New(), InvoiceID: uuid.New()})
	assert.ErrorIs(t, err, ErrQueueClosed)
}

func TestQueueFailedJobsDoNotStopWorkers(t *testing.T) {
	var mu sync.Mutex
	var ok int

	q := NewQueue(func(_ context.Context, orderID, _ uuid.UUID) error {
		if orderID == uuid.Nil {
			return errors.New("boom")
		}
		mu.Lock()
		ok++
		mu.Unlock()
		return nil
	}, discardLogger(), WithWorkers(2), WithProcessTimeout(time.Second))

	require.NoError(t, q.Enqueue(context.Background(), Job{OrderID: uuid.Nil, InvoiceID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{OrderID: uuid.New(), InvoiceID: uuid.New()}))
	require.NoError(t, q.Enqueue(context.Background(), Job{OrderID: uuid.New(), InvoiceID: uuid.New()}))
	q.Shutdown(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, ok)
}
