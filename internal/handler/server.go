// Package handler implements the HTTP handlers for the ELD Trip Planner API.
// All handlers are methods on Server; routes are registered by NewRouter.
// Methods are split into domain-specific files (health.go, trip.go) but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/service"
)

// PlannerServicer defines the trip-planning operation the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching geocoding, routing, or the database.
type PlannerServicer interface {
	Plan(ctx context.Context, in service.PlanInput) (service.PlanOutput, error)
}

// TripServicer defines the read and delete operations over stored trips.
type TripServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LogsByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error)
	RouteByTrip(ctx context.Context, tripID uuid.UUID) (domain.Route, error)
}

// Server holds the handler dependencies for all API endpoints.
// Wire it in main.go via NewRouter(NewServer(...)).
type Server struct {
	planner PlannerServicer
	trips   TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, trips TripServicer) *Server {
	return &Server{planner: planner, trips: trips}
}
