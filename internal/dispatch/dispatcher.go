// Package dispatch decouples message sending from the request path. Sends are
// fire-and-forget: Enqueue returns immediately and a bounded worker pool
// performs the delivery in the background. A failed send is logged and
// counted, never surfaced to the caller.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/curious/backend/internal/metrics"
	"github.com/curious/backend/pkg/sms"
	"golang.org/x/sync/semaphore"
)

// DefaultWorkers is the default bound on concurrent sends.
const DefaultWorkers = 8

// sendTimeout bounds a single delivery attempt.
const sendTimeout = 30 * time.Second

// Dispatcher は Sender への送信タスクを非同期に実行する。
type Dispatcher struct {
	sender  sms.Sender
	metrics *metrics.Metrics
	sem     *semaphore.Weighted
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New creates a Dispatcher with the given concurrency bound. workers <= 0
// falls back to DefaultWorkers.
func New(sender sms.Sender, m *metrics.Metrics, workers int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Dispatcher{
		sender:  sender,
		metrics: m,
		sem:     semaphore.NewWeighted(int64(workers)),
	}
}

// Enqueue submits one send and returns immediately. Each task is independent:
// a failure affects neither the caller nor other tasks.
func (d *Dispatcher) Enqueue(to, body string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		slog.Warn("dispatcher closed, dropping send", "to", to)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := d.sem.Acquire(ctx, 1); err != nil {
			d.metrics.Sends.WithLabelValues(d.sender.Name(), "error").Inc()
			slog.Error("sms send timed out waiting for worker", "to", to, "error", err)
			return
		}
		defer d.sem.Release(1)

		if err := d.sender.Send(ctx, to, body); err != nil {
			d.metrics.Sends.WithLabelValues(d.sender.Name(), "error").Inc()
			slog.Error("sms send failed", "to", to, "error", err)
			return
		}
		d.metrics.Sends.WithLabelValues(d.sender.Name(), "ok").Inc()
	}()
}

// Close waits for in-flight sends to finish. Further Enqueue calls are
// dropped. Used during graceful shutdown.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
