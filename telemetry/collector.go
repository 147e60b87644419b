// Package telemetry exposes bucketmap structural counters to Prometheus.
// The collector is pull-based: it snapshots the map's Stats on every scrape,
// so nothing in the container's hot path touches a metric.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/amp-labs/bucketmap/bucketmap"
)

// StatsSource is anything that can report bucketmap.Stats. Both the plain
// map and the locked wrapper satisfy it. When the source is an unlocked map
// mutated by another goroutine, wrap it with bucketmap.NewLocked first: only
// the resize counter is safe to read concurrently.
type StatsSource interface {
	Stats() bucketmap.Stats
}

// Options configures a Collector.
type Options struct {
	namespace   string
	constLabels prometheus.Labels
}

// Option is a functional option for configuring a Collector.
type Option func(*Options)

// WithNamespace prefixes every metric name with the given namespace.
func WithNamespace(namespace string) Option {
	return func(o *Options) {
		o.namespace = namespace
	}
}

// WithConstLabels attaches the given labels to every metric. Use this to
// distinguish collectors when several maps are registered in one registry.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(o *Options) {
		o.constLabels = labels
	}
}

// Collector is a prometheus.Collector over a map's Stats surface.
//
// Register it like any other collector:
//
//	m, _ := bucketmap.New[keyed.String, int]()
//	prometheus.MustRegister(telemetry.NewCollector(m))
type Collector struct {
	source StatsSource

	entries      *prometheus.Desc
	buckets      *prometheus.Desc
	resizes      *prometheus.Desc
	maxBucketLen *prometheus.Desc
	loadFactor   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector reading from the given source.
func NewCollector(source StatsSource, opts ...Option) *Collector {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(options.namespace, "bucketmap", name),
			help,
			nil,
			options.constLabels,
		)
	}

	return &Collector{
		source:       source,
		entries:      desc("entries", "Number of key-value pairs stored."),
		buckets:      desc("buckets", "Current bucket count."),
		resizes:      desc("resizes_total", "Number of bucket-array grows since construction."),
		maxBucketLen: desc("max_bucket_length", "Length of the longest bucket."),
		loadFactor:   desc("load_factor", "Observed ratio of entries to buckets."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.buckets
	ch <- c.resizes
	ch <- c.maxBucketLen
	ch <- c.loadFactor
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
	ch <- prometheus.MustNewConstMetric(c.buckets, prometheus.GaugeValue, float64(stats.Buckets))
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.CounterValue, float64(stats.Resizes))
	ch <- prometheus.MustNewConstMetric(c.maxBucketLen, prometheus.GaugeValue, float64(stats.MaxBucketLen))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, stats.LoadFactor)
}
