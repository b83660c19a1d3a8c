package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haulwell/eld-planner/backend/spec"
)

// NewRouter registers every API route on a fresh chi router.
// Middleware (request ID, logging, CORS, body limits) is applied by the
// caller so tests can exercise routes without the full stack.
func NewRouter(s *Server) chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", handleOpenAPI)

	r.Route("/api/trips", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculateTrip)
		r.Get("/", s.handleListTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetTrip)
			r.Delete("/", s.handleDeleteTrip)
			r.Get("/logs", s.handleTripLogs)
			r.Get("/route", s.handleTripRoute)
		})
	})

	return r
}

// handleOpenAPI serves the embedded OpenAPI document. Serving it from the
// binary means the spec and the running code are always in sync.
func handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(spec.OpenAPI)
}
