// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/ladderscope/core/internal/ladder"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Service   string            `json:"service"`
	Uptime    string            `json:"uptime,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

var startTime = time.Now()

// HealthHandler reports liveness with the default engine settings.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	NewHealthHandler(ladder.DefaultOptions())(w, r)
}

// NewHealthHandler reports liveness along with the engine settings the
// server analyses with.
func NewHealthHandler(opts ladder.Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		response := HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Service:   "ladderscope-api",
			Uptime:    time.Since(startTime).String(),
			Details: map[string]string{
				"go_version": runtime.Version(),
				"num_cpu":    strconv.Itoa(runtime.NumCPU()),
				"port_scope": string(opts.PortScope),
				"max_chains": strconv.Itoa(opts.MaxChains),
			},
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
	}
}
