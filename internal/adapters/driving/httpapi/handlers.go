package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driving"
	"github.com/custodia-labs/teampulse/internal/logger"
)

// SubmitRequest is the body of POST /api/ratings.
type SubmitRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Reason string `json:"reason,omitempty"`
}

// SubmitResponse is the success body of POST /api/ratings.
type SubmitResponse struct {
	OK bool `json:"ok"`
}

// DayStatsResponse is one per-day bucket in the stats payload.
type DayStatsResponse struct {
	Day     string  `json:"day"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// RoleStatsResponse is one per-role aggregate in the stats payload.
type RoleStatsResponse struct {
	Role    string  `json:"role"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// StatsResponse is the body of GET /api/stats.
type StatsResponse struct {
	From           string              `json:"from"`
	To             string              `json:"to"`
	Count          int                 `json:"count"`
	Average        float64             `json:"average"`
	PerDay         []DayStatsResponse  `json:"perDay"`
	ByRole         []RoleStatsResponse `json:"byRole,omitempty"`
	SubmittedToday []string            `json:"submittedToday,omitempty"`
}

// Handler serves the rating API.
type Handler struct {
	submit driving.SubmitService
	query  driving.QueryService
}

// NewHandler creates the API handler.
func NewHandler(submit driving.SubmitService, query driving.QueryService) *Handler {
	return &Handler{submit: submit, query: query}
}

// SubmitRating handles POST /api/ratings.
func (h *Handler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := h.submit.Submit(r.Context(), driving.Submission{
		Name:   req.Name,
		Rating: req.Rating,
		Reason: req.Reason,
	})
	switch {
	case err == nil:
		JSONResponse(w, http.StatusOK, SubmitResponse{OK: true})
	case errors.Is(err, domain.ErrInvalidInput):
		ErrorResponse(w, http.StatusBadRequest, "name and a rating between 1 and 5 are required")
	case errors.Is(err, domain.ErrAlreadySubmitted):
		ErrorResponse(w, http.StatusConflict, "you have already submitted your rating for today")
	case errors.Is(err, domain.ErrVersionConflict):
		// Lost the append race to a concurrent submitter. Not retried
		// here: the caller may resubmit.
		ErrorResponse(w, http.StatusConflict, "a concurrent submission won, please retry")
	default:
		logger.Error("submit failed: %v", err)
		ErrorResponse(w, http.StatusInternalServerError, "could not store the submission")
	}
}

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			ErrorResponse(w, http.StatusBadRequest, "days must be a positive integer")
			return
		}
		days = n
	}

	report, err := h.query.Stats(r.Context(), days)
	if err != nil {
		logger.Error("stats failed: %v", err)
		ErrorResponse(w, http.StatusInternalServerError, "could not compute statistics")
		return
	}

	JSONResponse(w, http.StatusOK, toStatsResponse(report))
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func toStatsResponse(report driving.Report) StatsResponse {
	resp := StatsResponse{
		From:           report.From,
		To:             report.To,
		Count:          report.Count,
		Average:        report.Average,
		PerDay:         make([]DayStatsResponse, len(report.PerDay)),
		SubmittedToday: report.SubmittedToday,
	}
	for i, day := range report.PerDay {
		resp.PerDay[i] = DayStatsResponse{Day: day.Day, Count: day.Count, Average: day.Average}
	}
	for _, role := range report.ByRole {
		resp.ByRole = append(resp.ByRole, RoleStatsResponse{
			Role:    role.Role.String(),
			Count:   role.Count,
			Average: role.Average,
		})
	}
	return resp
}
