package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"teamdash/domain/team"
	"teamdash/internal/errors"
	"teamdash/internal/logger"
	"teamdash/ports"
)

// ChartRenderer renders a summary's title histogram as PNG bytes
type ChartRenderer interface {
	RenderSummaryPNG(summary team.Summary) ([]byte, error)
}

// SummaryResponse is the JSON body of GET /summary
type SummaryResponse struct {
	team.Summary
	TotalCostFormatted string         `json:"total_cost_formatted"`
	Categories         []string       `json:"categories"`
	Counts             []float64      `json:"counts"`
	Widgets            []team.Widget  `json:"widgets"`
	Compensation       team.CostStats `json:"compensation"`
}

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Handler serves the read-only JSON API
type Handler struct {
	persons ports.PersonRepository
	chart   ChartRenderer
	log     *logger.Logger
}

// NewHandler creates a JSON API handler
func NewHandler(persons ports.PersonRepository, chart ChartRenderer, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		persons: persons,
		chart:   chart,
		log:     log.With("component", "api"),
	}
}

// Routes returns a router with paths relative to its mount point
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/summary", h.handleSummary)
	r.Get("/members", h.handleMembers)
	r.Get("/chart.png", h.handleChart)
	return r
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.List(r.Context())
	if err != nil {
		h.writeError(w, err, team.PersonsFetchFailure)
		return
	}

	summary := team.Aggregate(persons)
	compensation, err := team.CompensationStats(persons)
	if err != nil {
		h.writeError(w, errors.Wrap(err, "failed to compute compensation statistics"), team.PersonsFetchFailure)
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{
		Summary:            summary,
		TotalCostFormatted: summary.FormattedTotalCost(),
		Categories:         summary.Categories(),
		Counts:             summary.Counts(),
		Widgets:            summary.Widgets(),
		Compensation:       compensation,
	})
}

func (h *Handler) handleMembers(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.List(r.Context())
	if err != nil {
		h.writeError(w, err, team.PersonsFetchFailure)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"members": persons,
		"count":   len(persons),
	})
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	persons, err := h.persons.List(r.Context())
	if err != nil {
		h.writeError(w, err, team.PersonsFetchFailure)
		return
	}

	png, err := h.chart.RenderSummaryPNG(team.Aggregate(persons))
	if err != nil {
		h.log.Warn("chart rendering failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Error generating chart",
			Code:  errors.GetCode(err),
		})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.log.Debug("failed to write chart response", "error", err)
	}
}

// writeError logs err and responds with the user-facing message of its
// roster ErrorKind, or of fallback when it carries none.
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback team.ErrorKind) {
	status := errors.HTTPStatus(err)
	h.log.Error("api request failed", "status", status, "error", err)
	writeJSON(w, status, ErrorResponse{
		Error: team.UserMessage(err, fallback),
		Code:  errors.GetCode(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
