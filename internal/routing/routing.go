// Package routing resolves free-text addresses to coordinates and computes
// road routes between them via OpenRouteService. When the directions API is
// unreachable the route degrades to a great-circle estimate so trip planning
// still produces a usable distance.
package routing

import (
	"context"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// Geocoder resolves a free-text address to coordinates.
// Returns domain.ErrNotFound when the address cannot be resolved,
// domain.ErrUpstream when the provider is unreachable.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}

// RouteProvider computes a road route through the given waypoints in order.
type RouteProvider interface {
	Route(ctx context.Context, waypoints ...domain.Coordinate) (domain.RouteInfo, error)
}
