package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/repo"
)

// TripService implements read and delete operations over stored trips and
// their owned daily logs and route.
type TripService struct {
	trips  repo.TripRepo
	logs   repo.LogRepo
	routes repo.RouteRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, logs repo.LogRepo, routes repo.RouteRepo) *TripService {
	return &TripService{trips: trips, logs: logs, routes: routes}
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns a page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Delete removes a trip; its logs and route cascade in the database.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// LogsByTrip returns the daily logs for a trip in calendar order.
// Returns domain.ErrNotFound if the trip does not exist.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) LogsByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TripService.LogsByTrip: %w", err)
	}
	logs, err := s.logs.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.LogsByTrip: %w", err)
	}
	if logs == nil {
		logs = []domain.DailyLog{}
	}
	return logs, nil
}

// RouteByTrip returns the stored route for a trip.
// Returns domain.ErrNotFound if the trip or its route does not exist.
func (s *TripService) RouteByTrip(ctx context.Context, tripID uuid.UUID) (domain.Route, error) {
	route, err := s.routes.GetByTripID(ctx, tripID)
	if err != nil {
		return domain.Route{}, fmt.Errorf("service.TripService.RouteByTrip: %w", err)
	}
	return route, nil
}
