package routing

import (
	"context"
	"fmt"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// Disabled is the Geocoder and RouteProvider wired when no provider API key
// is configured. Every call fails with domain.ErrUpstream so trip planning
// reports a clear 502 while the read endpoints keep working.
type Disabled struct{}

func (Disabled) Geocode(_ context.Context, _ string) (domain.Coordinate, error) {
	return domain.Coordinate{}, fmt.Errorf("routing.Disabled: %w: no geocoding provider configured", domain.ErrUpstream)
}

func (Disabled) Route(_ context.Context, _ ...domain.Coordinate) (domain.RouteInfo, error) {
	return domain.RouteInfo{}, fmt.Errorf("routing.Disabled: %w: no routing provider configured", domain.ErrUpstream)
}

var (
	_ Geocoder      = Disabled{}
	_ RouteProvider = Disabled{}
)
