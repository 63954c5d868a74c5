package batch

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/semscore/fetch"
)

// Metrics holds the Prometheus collectors for scoring runs. A nil *Metrics
// is a valid no-op receiver so single-shot runs can skip registration.
type Metrics struct {
	resourcesScored prometheus.Counter
	filesProcessed  prometheus.Counter
	fileErrors      prometheus.Counter
	fetchFailures   prometheus.Counter
	runDuration     prometheus.Histogram
}

// NewMetrics builds and registers the scoring collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		resourcesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "semscore_resources_scored_total",
			Help: "Catalogue resources scored.",
		}),
		filesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "semscore_files_processed_total",
			Help: "Input files scored successfully.",
		}),
		fileErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "semscore_file_errors_total",
			Help: "Input files skipped due to errors.",
		}),
		fetchFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "semscore_fetch_failures_total",
			Help: "Reachability checks that failed and scored zero.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "semscore_run_duration_seconds",
			Help:    "Duration of directory scoring runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.resourcesScored, m.filesProcessed, m.fileErrors,
		m.fetchFailures, m.runDuration)
	return m
}

// ResourceScored counts one scored catalogue resource.
func (m *Metrics) ResourceScored() {
	if m != nil {
		m.resourcesScored.Inc()
	}
}

// FileProcessed counts one successfully scored input file.
func (m *Metrics) FileProcessed() {
	if m != nil {
		m.filesProcessed.Inc()
	}
}

// FileError counts one skipped input file.
func (m *Metrics) FileError() {
	if m != nil {
		m.fileErrors.Inc()
	}
}

// FetchFailed counts one failed reachability check.
func (m *Metrics) FetchFailed() {
	if m != nil {
		m.fetchFailures.Inc()
	}
}

// ObserveRun records one directory run's duration.
func (m *Metrics) ObserveRun(d time.Duration) {
	if m != nil {
		m.runDuration.Observe(d.Seconds())
	}
}

// InstrumentFetcher wraps a fetcher so failed reachability checks are
// counted.
func (m *Metrics) InstrumentFetcher(f fetch.Fetcher) fetch.Fetcher {
	if m == nil {
		return f
	}
	return countingFetcher{inner: f, metrics: m}
}

type countingFetcher struct {
	inner   fetch.Fetcher
	metrics *Metrics
}

func (c countingFetcher) Fetch(ctx context.Context, uri string) bool {
	ok := c.inner.Fetch(ctx, uri)
	if !ok {
		c.metrics.FetchFailed()
	}
	return ok
}
