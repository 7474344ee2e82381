// Package main starts an HTTP server that provides endpoints for health checks
// and ladder structural analysis. It uses the internal handlers package to
// process incoming requests and return JSON responses.
package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ladderscope/core/internal/config"
	"github.com/ladderscope/core/internal/handlers"
	"github.com/ladderscope/core/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesTable is rail -> Start -> Stop(negated) -> Motor coil, with Motor
// holding itself around Start.
const seriesTable = `[
	{"scope_name": "Main", "section_name": "Body", "rung_id": 0, "kind": "LeftPowerRail",
	 "attributes": {"out_list": ["p0"]}},
	{"scope_name": "Main", "section_name": "Body", "rung_id": 0, "kind": "Contact",
	 "attributes": {"operand": "Start", "in_list": ["p0"], "out_list": ["a0"]}},
	{"scope_name": "Main", "section_name": "Body", "rung_id": 0, "kind": "Contact",
	 "attributes": {"operand": "Motor", "in_list": ["p0"], "out_list": ["a0"]}},
	{"scope_name": "Main", "section_name": "Body", "rung_id": 0, "kind": "Contact",
	 "attributes": {"operand": "Stop", "negated": "true", "in_list": ["a0"], "out_list": ["a1"]}},
	{"scope_name": "Main", "section_name": "Body", "rung_id": 0, "kind": "Coil",
	 "attributes": {"operand": "Motor", "in_list": ["a1"], "out_list": ["r0"]}},
	{"scope_name": "Main", "section_name": "Body", "rung_id": 0, "kind": "RightPowerRail",
	 "attributes": {"in_list": ["r0"]}}
]`

func setupRouter() http.Handler {
	cfg := config.DefaultConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRouter(cfg, logger, metrics.NewRegistry())
}

func TestMainRoutes(t *testing.T) {
	router := setupRouter()

	t.Run("health endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("analyze endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`[]`))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	})

	t.Run("metrics endpoint is accessible", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	t.Run("non-existent route returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("responses carry CORS headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestHealthEndpointIntegration(t *testing.T) {
	router := setupRouter()

	t.Run("health returns valid response structure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		var response handlers.HealthResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		require.NoError(t, err)

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "ladderscope-api", response.Service)
		assert.NotEmpty(t, response.Timestamp)
		assert.NotEmpty(t, response.Uptime)
	})

	t.Run("health endpoint rejects POST", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestEndToEndFlow(t *testing.T) {
	router := setupRouter()

	t.Run("health check, analysis, then queries", func(t *testing.T) {
		healthW := httptest.NewRecorder()
		router.ServeHTTP(healthW, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, healthW.Code)

		analyzeW := httptest.NewRecorder()
		router.ServeHTTP(analyzeW, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(seriesTable)))
		require.Equal(t, http.StatusOK, analyzeW.Code)

		var report handlers.AnalyzeResponse
		require.NoError(t, json.NewDecoder(analyzeW.Body).Decode(&report))
		require.Len(t, report.Rungs, 1)
		assert.Equal(t, []string{"Motor"}, report.Rungs[0].SelfHolding)
		assert.Equal(t, 6, report.Stats.TotalElements)

		holdBody := `{"operand": "Motor", "in_list": ["a1"], "elements": ` + seriesTable + `}`
		holdW := httptest.NewRecorder()
		router.ServeHTTP(holdW, httptest.NewRequest(http.MethodPost, "/self-holding", strings.NewReader(holdBody)))
		require.Equal(t, http.StatusOK, holdW.Code)
		assert.JSONEq(t, `{"self_holding": true}`, holdW.Body.String())

		parBody := `{"operand": "Motor", "elements": ` + seriesTable + `}`
		parW := httptest.NewRecorder()
		router.ServeHTTP(parW, httptest.NewRequest(http.MethodPost, "/parallel", strings.NewReader(parBody)))
		require.Equal(t, http.StatusOK, parW.Code)
		assert.JSONEq(t, `{"operands": ["Start"]}`, parW.Body.String())

		metricsW := httptest.NewRecorder()
		router.ServeHTTP(metricsW, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Contains(t, metricsW.Body.String(), `ladderscope_http_requests_total{method="POST",path="/analyze",status="200"} 1`)
	})
}

func TestRoutePaths(t *testing.T) {
	router := setupRouter()

	testCases := []struct {
		name           string
		path           string
		method         string
		expectedStatus int
	}{
		{"health with GET", "/health", http.MethodGet, http.StatusOK},
		{"health with POST", "/health", http.MethodPost, http.StatusMethodNotAllowed},
		{"analyze with empty POST", "/analyze", http.MethodPost, http.StatusBadRequest},
		{"analyze with GET", "/analyze", http.MethodGet, http.StatusMethodNotAllowed},
		{"self-holding with GET", "/self-holding", http.MethodGet, http.StatusMethodNotAllowed},
		{"parallel with GET", "/parallel", http.MethodGet, http.StatusMethodNotAllowed},
		{"metrics with POST", "/metrics", http.MethodPost, http.StatusMethodNotAllowed},
		{"preflight", "/analyze", http.MethodOptions, http.StatusNoContent},
		{"unknown path", "/unknown", http.MethodGet, http.StatusNotFound},
		{"root path", "/", http.MethodGet, http.StatusNotFound},
		{"health with trailing slash", "/health/", http.MethodGet, http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestConcurrentRequests(t *testing.T) {
	router := setupRouter()

	t.Run("handles mixed concurrent requests", func(t *testing.T) {
		numRequests := 100
		results := make(chan int, numRequests)

		for i := range numRequests {
			go func(index int) {
				var req *http.Request
				if index%2 == 0 {
					req = httptest.NewRequest(http.MethodGet, "/health", nil)
				} else {
					req = httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(seriesTable))
				}
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				results <- w.Code
			}(i)
		}

		for range numRequests {
			code := <-results
			assert.Equal(t, http.StatusOK, code)
		}
	})
}
