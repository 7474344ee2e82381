package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)

	assert.NotNil(t, r.HTTPRequestsTotal)
	assert.NotNil(t, r.HTTPRequestDuration)
	assert.NotNil(t, r.RungsAnalyzed)
	assert.NotNil(t, r.RowsSkipped)
	assert.NotNil(t, r.AnalysisDuration)
	assert.NotNil(t, r.registry)
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()

	r.RecordHTTPRequest("POST", "/analyze", "200", 10*time.Millisecond)
	r.RecordHTTPRequest("POST", "/analyze", "200", 20*time.Millisecond)
	r.RecordHTTPRequest("POST", "/analyze", "400", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.HTTPRequestsTotal.WithLabelValues("POST", "/analyze", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.HTTPRequestsTotal.WithLabelValues("POST", "/analyze", "400")))
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("analyze", 3, 2, 1, 5*time.Millisecond)
	r.RecordAnalysis("analyze", 4, 0, 0, 5*time.Millisecond)
	r.RecordRejected()

	assert.Equal(t, 7.0, testutil.ToFloat64(r.RungsAnalyzed))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.RowsSkipped))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ChainsTruncated))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.TablesAnalyzed.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.TablesAnalyzed.WithLabelValues("rejected")))
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordAnalysis("analyze", 1, 0, 0, time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ladderscope_rungs_analyzed_total 1")
	assert.Contains(t, w.Body.String(), "ladderscope_analysis_duration_seconds")
}
