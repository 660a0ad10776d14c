package telemetry

import (
	"sync/atomic"
)

// QueueMetrics aggregates counters for queue operations.
type QueueMetrics struct {
	enqueues      atomic.Uint64
	dequeues      atomic.Uint64
	emptyDequeues atomic.Uint64
}

var defaultQueueMetrics QueueMetrics

// DefaultQueueMetrics returns the package-wide counters that queues record to
// unless configured otherwise.
func DefaultQueueMetrics() *QueueMetrics {
	return &defaultQueueMetrics
}

// RecordEnqueue counts one appended element.
func (m *QueueMetrics) RecordEnqueue() {
	m.enqueues.Add(1)
}

// RecordDequeue counts one dequeue attempt. hit reports whether an element
// was returned.
func (m *QueueMetrics) RecordDequeue(hit bool) {
	m.dequeues.Add(1)
	if !hit {
		m.emptyDequeues.Add(1)
	}
}

// Snapshot returns the collected values.
func (m *QueueMetrics) Snapshot() (enqueues, dequeues, emptyDequeues uint64) {
	return m.enqueues.Load(), m.dequeues.Load(), m.emptyDequeues.Load()
}

// Reset clears all counters.
func (m *QueueMetrics) Reset() {
	m.enqueues.Store(0)
	m.dequeues.Store(0)
	m.emptyDequeues.Store(0)
}
