// Package domain contains the core data types for the ELD Trip Planner API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (hos, routing, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single planned haul from a driver's current position
// through a pickup to a dropoff. A trip is the top-level aggregate; daily
// logs and the stored route belong to a trip.
type Trip struct {
	ID                uuid.UUID `json:"id"`
	CurrentLocation   string    `json:"current_location"`
	PickupLocation    string    `json:"pickup_location"`
	DropoffLocation   string    `json:"dropoff_location"`
	CurrentCycleUsed  float64   `json:"current_cycle_used"`
	TotalDistance     float64   `json:"total_distance"`
	EstimatedDuration float64   `json:"estimated_duration"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
