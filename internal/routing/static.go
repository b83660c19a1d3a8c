package routing

import (
	"context"
	"fmt"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// StaticGeocoder resolves addresses from a fixed in-memory table.
// It exists for tests and offline development.
type StaticGeocoder struct {
	Coords map[string]domain.Coordinate
}

// Geocode looks the address up in the table, returning domain.ErrNotFound
// for unknown addresses.
func (s *StaticGeocoder) Geocode(_ context.Context, address string) (domain.Coordinate, error) {
	c, ok := s.Coords[address]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("routing.StaticGeocoder: %q: %w", address, domain.ErrNotFound)
	}
	return c, nil
}

// StaticRouteProvider returns a fixed RouteInfo (or error) for every request.
type StaticRouteProvider struct {
	Info domain.RouteInfo
	Err  error
}

// Route returns the configured route regardless of waypoints.
func (s *StaticRouteProvider) Route(_ context.Context, waypoints ...domain.Coordinate) (domain.RouteInfo, error) {
	if s.Err != nil {
		return domain.RouteInfo{}, s.Err
	}
	info := s.Info
	info.Waypoints = waypoints
	return info, nil
}

var (
	_ Geocoder      = (*StaticGeocoder)(nil)
	_ RouteProvider = (*StaticRouteProvider)(nil)
	_ Geocoder      = (*ORSClient)(nil)
	_ RouteProvider = (*ORSClient)(nil)
)
