package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream(t *testing.T) {
	m := New()

	m.ObserveUpstream("/lists.json", OutcomeOK, 10*time.Millisecond)
	m.ObserveUpstream("/lists.json", OutcomeOK, 20*time.Millisecond)
	m.ObserveUpstream("/lists.json", OutcomeRejected, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamCounter.WithLabelValues("/lists.json", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamCounter.WithLabelValues("/lists.json", OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamLatency))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/apiv3/lists", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "/apiv3/lists", "404")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveUpstream("/reviews.json", OutcomeFailed, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bookgw_upstream_calls_total{outcome="failed",resource="/reviews.json"} 1`)
}
