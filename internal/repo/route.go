package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// RouteRepo defines the persistence operations for stored routes.
// Each trip owns at most one route.
type RouteRepo interface {
	// Create inserts the route for a trip and returns the persisted record.
	Create(ctx context.Context, route domain.Route) (domain.Route, error)

	// GetByTripID retrieves the route belonging to a trip.
	// Returns domain.ErrNotFound if the trip has no stored route.
	GetByTripID(ctx context.Context, tripID uuid.UUID) (domain.Route, error)
}

// pgRouteRepo is the Postgres implementation of RouteRepo.
// Waypoints and fuel stops are stored as JSONB; pgx serializes the domain
// slices transparently.
type pgRouteRepo struct {
	db db
}

// NewRouteRepo constructs a RouteRepo backed by the provided db connection.
func NewRouteRepo(db db) RouteRepo {
	return &pgRouteRepo{db: db}
}

func (r *pgRouteRepo) Create(ctx context.Context, route domain.Route) (domain.Route, error) {
	const q = `
		INSERT INTO routes (trip_id, polyline, waypoints, stops)
		VALUES (@trip_id, @polyline, @waypoints, @stops)
		RETURNING id, trip_id, polyline, waypoints, stops, created_at`

	args := pgx.NamedArgs{
		"trip_id":   route.TripID,
		"polyline":  route.Polyline,
		"waypoints": route.Waypoints,
		"stops":     route.FuelStops,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanRoute(row)
	if err != nil {
		return domain.Route{}, fmt.Errorf("repo.RouteRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgRouteRepo) GetByTripID(ctx context.Context, tripID uuid.UUID) (domain.Route, error) {
	const q = `
		SELECT id, trip_id, polyline, waypoints, stops, created_at
		FROM routes
		WHERE trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	result, err := scanRoute(row)
	if err != nil {
		return domain.Route{}, fmt.Errorf("repo.RouteRepo.GetByTripID: %w", err)
	}
	return result, nil
}

// scanRoute maps a single database row into a domain.Route.
func scanRoute(s scanner) (domain.Route, error) {
	var (
		rt     domain.Route
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &rt.Polyline, &rt.Waypoints, &rt.FuelStops, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Route{}, domain.ErrNotFound
		}
		return domain.Route{}, err
	}

	rt.ID = uuid.UUID(id.Bytes)
	rt.TripID = uuid.UUID(tripID.Bytes)
	return rt, nil
}
