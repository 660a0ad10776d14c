package mpsc

import (
	"sync"

	"github.com/go-logr/logr"

	outcome "github.com/mlenders/outcomeq"
	"github.com/mlenders/outcomeq/internal/fifo"
	"github.com/mlenders/outcomeq/internal/telemetry"
)

// EmptyQueueError is the failure value reported by Dequeue when no element is
// available.
type EmptyQueueError struct{}

func (EmptyQueueError) Error() string { return "mpsc: queue is empty" }

type options struct {
	logger  logr.Logger
	metrics *telemetry.QueueMetrics
}

// Option configures a queue created by NewQueue or NewChannel.
type Option func(*options)

// WithLogger attaches a logger for verbose per-operation traces. Operations
// log at V(2); the default logger discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics records queue operations on the provided counters instead of
// the package-wide default ones.
func WithMetrics(metrics *telemetry.QueueMetrics) Option {
	return func(o *options) { o.metrics = metrics }
}

func defaultOptions() options {
	return options{
		logger:  logr.Discard(),
		metrics: telemetry.DefaultQueueMetrics(),
	}
}

// Queue is a FIFO of T values serialised by a single mutex. Any number of
// goroutines may call Enqueue concurrently; Dequeue is meant for a single
// logical consumer. The lock is held for the duration of the mutation only
// and is never exposed to callers.
type Queue[T any] struct {
	mu      sync.Mutex
	items   fifo.List[T]
	logger  logr.Logger
	metrics *telemetry.QueueMetrics
}

// NewQueue creates an empty queue.
func NewQueue[T any](opts ...Option) *Queue[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue[T]{logger: o.logger, metrics: o.metrics}
}

// Enqueue appends value at the tail. It cannot fail and never blocks beyond
// the lock hand-off.
func (q *Queue[T]) Enqueue(value T) {
	q.mu.Lock()
	q.items.PushBack(value)
	size := q.items.Len()
	q.mu.Unlock()

	q.metrics.RecordEnqueue()
	q.logger.V(2).Info("enqueued element", "len", size)
}

// Dequeue removes and returns the oldest element as a success outcome. When
// the queue is empty the outcome carries an EmptyQueueError instead; Dequeue
// never waits for data to arrive.
func (q *Queue[T]) Dequeue() *outcome.Outcome[T, EmptyQueueError] {
	q.mu.Lock()
	value, ok := q.items.PopFront()
	q.mu.Unlock()

	q.metrics.RecordDequeue(ok)
	if !ok {
		q.logger.V(2).Info("dequeue found queue empty")
		return outcome.Failure[T](EmptyQueueError{})
	}
	return outcome.Success[T, EmptyQueueError](value)
}

// Len returns the number of elements currently stored in the queue.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}
