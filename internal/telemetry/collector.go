package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	enqueuesDesc = prometheus.NewDesc(
		"mpsc_enqueues_total",
		"Count of elements appended to the queue.",
		nil, nil,
	)
	dequeuesDesc = prometheus.NewDesc(
		"mpsc_dequeues_total",
		"Count of dequeue attempts.",
		nil, nil,
	)
	emptyDequeuesDesc = prometheus.NewDesc(
		"mpsc_empty_dequeues_total",
		"Count of dequeue attempts that found the queue empty.",
		nil, nil,
	)
)

// Collector exposes QueueMetrics counters to a prometheus registry as const
// metrics read from the atomic counters at gather time.
type Collector struct {
	metrics *QueueMetrics
}

// NewCollector wraps the provided counters. Passing nil exposes the package
// default counters.
func NewCollector(metrics *QueueMetrics) *Collector {
	if metrics == nil {
		metrics = DefaultQueueMetrics()
	}
	return &Collector{metrics: metrics}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- enqueuesDesc
	ch <- dequeuesDesc
	ch <- emptyDequeuesDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	enqueues, dequeues, emptyDequeues := c.metrics.Snapshot()
	ch <- prometheus.MustNewConstMetric(enqueuesDesc, prometheus.CounterValue, float64(enqueues))
	ch <- prometheus.MustNewConstMetric(dequeuesDesc, prometheus.CounterValue, float64(dequeues))
	ch <- prometheus.MustNewConstMetric(emptyDequeuesDesc, prometheus.CounterValue, float64(emptyDequeues))
}
