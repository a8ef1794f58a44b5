package httpapi

import (
	"net/http"

	"github.com/custodia-labs/teampulse/internal/core/ports/driving"
)

// NewRouter wires the API routes. Method matching is handled by the
// mux patterns, so a POST to a GET route answers 405.
func NewRouter(submit driving.SubmitService, query driving.QueryService) *http.ServeMux {
	h := NewHandler(submit, query)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("POST /api/ratings", WithLogging(h.SubmitRating))
	mux.HandleFunc("GET /api/stats", WithLogging(h.GetStats))
	return mux
}
