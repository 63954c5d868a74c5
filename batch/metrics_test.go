package batch

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/c360studio/semscore/fetch"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ResourceScored()
	m.ResourceScored()
	m.FileProcessed()
	m.FileError()
	m.ObserveRun(50 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.resourcesScored))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.filesProcessed))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fileErrors))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.ResourceScored()
	m.FileProcessed()
	m.FileError()
	m.FetchFailed()
	m.ObserveRun(time.Second)

	f := m.InstrumentFetcher(fetch.None)
	assert.False(t, f.Fetch(context.Background(), "http://example.org/x"))
}

func TestInstrumentFetcherCountsFailures(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	f := m.InstrumentFetcher(fetch.Static{"http://example.org/ok": true})

	assert.True(t, f.Fetch(context.Background(), "http://example.org/ok"))
	assert.False(t, f.Fetch(context.Background(), "http://example.org/missing"))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fetchFailures))
}
