package domain

import (
	"time"

	"github.com/google/uuid"
)

// RouteInfo is the resolved road route for a trip, produced by the routing
// layer before the HOS engine runs. Polyline and Waypoints are empty when
// the route came from the great-circle fallback rather than a directions
// provider.
type RouteInfo struct {
	DistanceMiles float64      `json:"distance"`
	DurationHours float64      `json:"duration"`
	Polyline      string       `json:"polyline,omitempty"`
	Waypoints     []Coordinate `json:"waypoints,omitempty"`
	FuelStops     []FuelStop   `json:"stops"`
}

// Route is the persisted form of RouteInfo, owned by exactly one trip.
type Route struct {
	ID        uuid.UUID    `json:"id"`
	TripID    uuid.UUID    `json:"trip_id"`
	Polyline  string       `json:"polyline"`
	Waypoints []Coordinate `json:"waypoints"`
	FuelStops []FuelStop   `json:"stops"`
	CreatedAt time.Time    `json:"created_at"`
}
