// Package handlers provides HTTP request handlers for the API endpoints.
// It defines the routing logic, response formatting, and error handling mechanisms.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ladderscope/core/internal/ladder"
	"github.com/ladderscope/core/internal/metrics"
	"github.com/ladderscope/core/internal/models"
	"github.com/ladderscope/core/internal/parser"
)

const defaultMaxBodyBytes = 32 << 20

// Analyzer serves the analysis endpoints. The engine is stateless, so one
// Analyzer handles any number of concurrent requests.
type Analyzer struct {
	logger       *slog.Logger
	metrics      *metrics.Registry
	opts         ladder.Options
	maxBodyBytes int64
}

func NewAnalyzer(logger *slog.Logger, reg *metrics.Registry, opts ladder.Options, maxBodyBytes int64) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Analyzer{logger: logger, metrics: reg, opts: opts, maxBodyBytes: maxBodyBytes}
}

type AnalyzeResponse struct {
	ReportID string `json:"report_id"`
	models.TableReport
	Skipped []parser.RowError `json:"skipped,omitempty"`
}

type SelfHoldingRequest struct {
	Operand  string              `json:"operand"`
	InList   []string            `json:"in_list"`
	Elements []models.RawElement `json:"elements"`
}

type SelfHoldingResponse struct {
	SelfHolding bool `json:"self_holding"`
}

type ParallelRequest struct {
	Operand  string              `json:"operand"`
	Elements []models.RawElement `json:"elements"`
}

type ParallelResponse struct {
	Operands []string `json:"operands"`
}

func (a *Analyzer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Failed to read body")
		return nil, false
	}
	return body, true
}

// decodeTable decodes the request body as JSON, or as YAML when the content
// type says so.
func decodeTable(r *http.Request, body []byte) (*parser.Table, error) {
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		return parser.ParseTableYAML(body)
	}
	return parser.ParseTable(body)
}

func (a *Analyzer) logSkipped(path string, skipped []parser.RowError) {
	for _, row := range skipped {
		a.logger.Warn("skipped element row", "path", path, "row", row.Index, "kind", row.Kind, "reason", row.Reason)
	}
}

// AnalyzeHandler runs the full structural analysis over an element table.
// The optional "scope" query parameter overrides the block port scope.
func (a *Analyzer) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	opts := a.opts
	if s := r.URL.Query().Get("scope"); s != "" {
		scope, err := ladder.ParsePortScope(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		opts.PortScope = scope
	}

	body, ok := a.readBody(w, r)
	if !ok {
		return
	}

	table, err := decodeTable(r, body)
	if err != nil {
		a.metrics.RecordRejected()
		writeError(w, http.StatusBadRequest, "Invalid element table: "+err.Error())
		return
	}
	a.logSkipped(r.URL.Path, table.Skipped)

	start := time.Now()
	report := ladder.AnalyzeTable(table.Elements, opts)
	report.Stats = parser.BuildStats(table)
	elapsed := time.Since(start)

	truncated := 0
	for _, rung := range report.Rungs {
		if rung.Truncated {
			truncated++
		}
	}
	a.metrics.RecordAnalysis("analyze", len(report.Rungs), len(table.Skipped), truncated, elapsed)

	response := AnalyzeResponse{
		ReportID:    uuid.NewString(),
		TableReport: report,
		Skipped:     table.Skipped,
	}
	a.logger.Info("analysed element table",
		"report_id", response.ReportID,
		"rungs", len(report.Rungs),
		"skipped", len(table.Skipped),
		"duration", elapsed,
	)

	writeJSON(w, r, a.logger, response)
}

// SelfHoldingHandler answers whether a coil is held by a contact on its own
// operand.
func (a *Analyzer) SelfHoldingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, ok := a.readBody(w, r)
	if !ok {
		return
	}

	var req SelfHoldingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.metrics.RecordRejected()
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.Operand == "" {
		writeError(w, http.StatusBadRequest, "operand is required")
		return
	}

	table := parser.BuildTable(req.Elements)
	a.logSkipped(r.URL.Path, table.Skipped)

	start := time.Now()
	held := ladder.IsSelfHolding(req.Operand, req.InList, table.Elements)
	a.metrics.RecordAnalysis("self_holding", 1, len(table.Skipped), 0, time.Since(start))

	writeJSON(w, r, a.logger, SelfHoldingResponse{SelfHolding: held})
}

// ParallelHandler lists the operands of contacts parallel to the given one.
func (a *Analyzer) ParallelHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	body, ok := a.readBody(w, r)
	if !ok {
		return
	}

	var req ParallelRequest
	if err := json.Unmarshal(body, &req); err != nil {
		a.metrics.RecordRejected()
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	if req.Operand == "" {
		writeError(w, http.StatusBadRequest, "operand is required")
		return
	}

	table := parser.BuildTable(req.Elements)
	a.logSkipped(r.URL.Path, table.Skipped)

	start := time.Now()
	operands := ladder.ContactsInParallelWith(table.Elements, req.Operand)
	a.metrics.RecordAnalysis("parallel", 1, len(table.Skipped), 0, time.Since(start))
	if operands == nil {
		operands = []string{}
	}

	writeJSON(w, r, a.logger, ParallelResponse{Operands: operands})
}
