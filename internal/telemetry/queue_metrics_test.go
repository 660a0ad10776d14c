package telemetry

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestQueueMetricsSnapshot(t *testing.T) {
	var m QueueMetrics

	m.RecordEnqueue()
	m.RecordEnqueue()
	m.RecordDequeue(true)
	m.RecordDequeue(false)
	m.RecordDequeue(false)

	enqueues, dequeues, emptyDequeues := m.Snapshot()
	if enqueues != 2 {
		t.Fatalf("expected 2 enqueues, got %d", enqueues)
	}
	if dequeues != 3 {
		t.Fatalf("expected 3 dequeues, got %d", dequeues)
	}
	if emptyDequeues != 2 {
		t.Fatalf("expected 2 empty dequeues, got %d", emptyDequeues)
	}
}

func TestQueueMetricsReset(t *testing.T) {
	var m QueueMetrics

	m.RecordEnqueue()
	m.RecordDequeue(false)
	m.Reset()

	enqueues, dequeues, emptyDequeues := m.Snapshot()
	if enqueues != 0 || dequeues != 0 || emptyDequeues != 0 {
		t.Fatalf("expected all counters to be zero after reset, got %d/%d/%d", enqueues, dequeues, emptyDequeues)
	}
}

func TestCollectorExposesCounters(t *testing.T) {
	var m QueueMetrics
	m.RecordEnqueue()
	m.RecordEnqueue()
	m.RecordEnqueue()
	m.RecordDequeue(true)
	m.RecordDequeue(false)

	expected := `
# HELP mpsc_dequeues_total Count of dequeue attempts.
# TYPE mpsc_dequeues_total counter
mpsc_dequeues_total 2
# HELP mpsc_empty_dequeues_total Count of dequeue attempts that found the queue empty.
# TYPE mpsc_empty_dequeues_total counter
mpsc_empty_dequeues_total 1
# HELP mpsc_enqueues_total Count of elements appended to the queue.
# TYPE mpsc_enqueues_total counter
mpsc_enqueues_total 3
`

	if err := testutil.CollectAndCompare(NewCollector(&m), strings.NewReader(expected)); err != nil {
		t.Fatalf("unexpected collector output: %v", err)
	}
}

func TestNewCollectorDefaultsToPackageCounters(t *testing.T) {
	DefaultQueueMetrics().Reset()
	defer DefaultQueueMetrics().Reset()

	DefaultQueueMetrics().RecordEnqueue()

	c := NewCollector(nil)
	if got := testutil.CollectAndCount(c, "mpsc_enqueues_total"); got != 1 {
		t.Fatalf("expected one enqueues metric, got %d", got)
	}
}
