package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculationCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewRecalculation(reg)

	m.ObserveSuccess(2*time.Second, 10, 2)
	m.ObserveSuccess(time.Second, 5, 0)
	m.ObserveOutcome(OutcomeFailure)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.processed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.skipped))
}

func TestHandlerServesRegistry(t *testing.T) {
	reg := NewRegistry()
	NewRecalculation(reg).ObserveOutcome(OutcomeBusy)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `elo_recalculations_total{outcome="busy"} 1`)
}
