package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveOperation(t *testing.T) {
	initialSuccess := testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "success"))
	initialError := testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "error"))

	ObserveOperation("create", nil)
	ObserveOperation("create", errors.New("boom"))

	assert.Equal(t, initialSuccess+1, testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, initialError+1, testutil.ToFloat64(PostOperationsTotal.WithLabelValues("create", "error")))
}

func TestViewMetricsExist(t *testing.T) {
	initialDropped := testutil.ToFloat64(ViewRecordsTotal.WithLabelValues("dropped"))
	ViewRecordsTotal.WithLabelValues("dropped").Inc()
	assert.Equal(t, initialDropped+1, testutil.ToFloat64(ViewRecordsTotal.WithLabelValues("dropped")))

	ViewQueueDepth.Set(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(ViewQueueDepth))
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	assert.Equal(t, initialRequests+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")))
}

type stubPoolStats struct {
	total, idle, acquired int32
}

func (s stubPoolStats) TotalConns() int32    { return s.total }
func (s stubPoolStats) IdleConns() int32     { return s.idle }
func (s stubPoolStats) AcquiredConns() int32 { return s.acquired }

type stubPoolStatsProvider struct {
	stats stubPoolStats
}

func (p *stubPoolStatsProvider) Stat() PoolStats { return p.stats }

func TestPoolStatsCollector(t *testing.T) {
	provider := &stubPoolStatsProvider{stats: stubPoolStats{total: 10, idle: 6, acquired: 4}}

	collector := NewPoolStatsCollectorWithProvider(provider)
	collector.Start(time.Hour) // collects once immediately
	collector.Stop()

	assert.Equal(t, float64(10), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total")))
	assert.Equal(t, float64(6), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle")))
	assert.Equal(t, float64(4), testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("in_use")))
}

func TestTimer(t *testing.T) {
	timer := NewTimer()

	time.Sleep(10 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_histogram",
		Help:    "Test histogram for timer",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})

	timer.ObserveDuration(testHistogram)

	assert.Equal(t, 1, testutil.CollectAndCount(testHistogram))
}
