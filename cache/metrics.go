package cache

import "github.com/prometheus/client_golang/prometheus"

// StatsSource is anything that reports cache statistics.
type StatsSource interface {
	Stats() Stats
}

// Collector exports the statistics of a cache as Prometheus metrics.
type Collector struct {
	source StatsSource

	hits      *prometheus.Desc
	misses    *prometheus.Desc
	evictions *prometheus.Desc
	entries   *prometheus.Desc
	capacity  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for source. Metric names are built as
// namespace_name_<metric>, for example rtree_bounds_hits_total.
func NewCollector(namespace, name string, source StatsSource) *Collector {
	fq := func(metric string) string {
		return prometheus.BuildFQName(namespace, name, metric)
	}
	return &Collector{
		source:    source,
		hits:      prometheus.NewDesc(fq("hits_total"), "Number of cache lookups that found an entry.", nil, nil),
		misses:    prometheus.NewDesc(fq("misses_total"), "Number of cache lookups that found no entry.", nil, nil),
		evictions: prometheus.NewDesc(fq("evictions_total"), "Number of entries evicted to make room.", nil, nil),
		entries:   prometheus.NewDesc(fq("entries"), "Current number of cached entries.", nil, nil),
		capacity:  prometheus.NewDesc(fq("capacity"), "Maximum number of cached entries.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.evictions
	ch <- c.entries
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.source.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(s.Evictions))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity))
}
