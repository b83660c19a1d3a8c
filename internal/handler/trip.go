package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/service"
)

// Pagination describes the page of results returned by list endpoints.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// TripListResponse is the body of GET /api/trips.
type TripListResponse struct {
	Data       []domain.Trip `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// LogListResponse is the body of GET /api/trips/{id}/logs.
type LogListResponse struct {
	Data []domain.DailyLog `json:"data"`
}

// handleCalculateTrip handles POST /api/trips/calculate.
// It geocodes the three locations, resolves a route, runs the hours-of-service
// engine, persists the trip with its route and daily logs, and returns the
// whole plan with 201.
func (s *Server) handleCalculateTrip(w http.ResponseWriter, r *http.Request) {
	var in service.PlanInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			writeRequest(w, "request body is required")
			return
		}
		writeRequest(w, "malformed request body: "+err.Error())
		return
	}

	out, err := s.planner.Plan(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeValidation(w, err)
		case errors.Is(err, domain.ErrUpstream):
			writeUpstream(w, err)
		default:
			slog.ErrorContext(r.Context(), "plan trip failed", "error", err)
			writeInternal(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

// handleListTrips handles GET /api/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(
		queryInt(r, "page"),
		queryInt(r, "limit"),
	)

	trips, total, err := s.trips.List(r.Context(), params)
	if err != nil {
		slog.ErrorContext(r.Context(), "list trips failed", "error", err)
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, TripListResponse{
		Data: trips,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// handleGetTrip handles GET /api/trips/{id}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		slog.ErrorContext(r.Context(), "get trip failed", "error", err)
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// handleDeleteTrip handles DELETE /api/trips/{id}.
// The trip's daily logs and route cascade in the database.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		slog.ErrorContext(r.Context(), "delete trip failed", "error", err)
		writeInternal(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleTripLogs handles GET /api/trips/{id}/logs.
func (s *Server) handleTripLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	logs, err := s.trips.LogsByTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "trip not found")
			return
		}
		slog.ErrorContext(r.Context(), "list trip logs failed", "error", err)
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, LogListResponse{Data: logs})
}

// handleTripRoute handles GET /api/trips/{id}/route.
func (s *Server) handleTripRoute(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	route, err := s.trips.RouteByTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, "route not found")
			return
		}
		slog.ErrorContext(r.Context(), "get trip route failed", "error", err)
		writeInternal(w)
		return
	}

	writeJSON(w, http.StatusOK, route)
}

// pathID parses the {id} path parameter as a UUID. On failure it writes a
// 422 and returns ok=false; chi guarantees the parameter is present on
// routes that declare it.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeRequest(w, "invalid trip id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional positive integer query parameter.
// Missing or malformed values are treated as absent.
func queryInt(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
