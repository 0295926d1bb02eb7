// Package metrics provides Prometheus instrumentation for jobsys schedulers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/jobsys/pkg/jobsystem"
)

const namespace = "jobsys"

// StatsSource is anything that can produce scheduler stats snapshots.
// *jobsystem.System satisfies it.
type StatsSource interface {
	Stats() jobsystem.Stats
}

// Collector exposes a scheduler's counters as Prometheus metrics. It
// takes a fresh Stats snapshot on every scrape, so no polling goroutine
// is needed and the scheduler itself carries no metrics code.
type Collector struct {
	source StatsSource

	workers   *prometheus.Desc
	queued    *prometheus.Desc
	inFlight  *prometheus.Desc
	submitted *prometheus.Desc
	completed *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for source. The system label carries
// name so several schedulers can share one registry.
func NewCollector(name string, source StatsSource) *Collector {
	constLabels := prometheus.Labels{"system": name}

	return &Collector{
		source: source,
		workers: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "workers"),
			"Size of the worker pool.",
			nil, constLabels,
		),
		queued: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "queued_tasks"),
			"Number of tasks waiting in the queue.",
			nil, constLabels,
		),
		inFlight: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "in_flight_tasks"),
			"Number of tasks currently executing.",
			nil, constLabels,
		),
		submitted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "submitted_total"),
			"Total number of tasks accepted by the scheduler.",
			nil, constLabels,
		),
		completed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "completed_total"),
			"Total number of tasks whose function returned.",
			nil, constLabels,
		),
	}
}

// Register creates a collector for source and registers it with reg.
// A nil reg means prometheus.DefaultRegisterer.
func Register(reg prometheus.Registerer, name string, source StatsSource) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := NewCollector(name, source)
	if err := reg.Register(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.workers
	ch <- c.queued
	ch <- c.inFlight
	ch <- c.submitted
	ch <- c.completed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.workers, prometheus.GaugeValue, float64(stats.Workers))
	ch <- prometheus.MustNewConstMetric(c.queued, prometheus.GaugeValue, float64(stats.Queued))
	ch <- prometheus.MustNewConstMetric(c.inFlight, prometheus.GaugeValue, float64(stats.InFlight))
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(stats.Submitted))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(stats.Completed))
}
