package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog is a persisted ELD log for one calendar day of a trip.
// The four hour buckets mirror the duty-status grid on a paper log sheet.
type DailyLog struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"trip_id"`
	LogDate       time.Time `json:"log_date"`
	OffDutyHours  float64   `json:"off_duty_hours"`
	SleeperHours  float64   `json:"sleeper_berth_hours"`
	DrivingHours  float64   `json:"driving_hours"`
	OnDutyHours   float64   `json:"on_duty_hours"`
	TotalDistance float64   `json:"total_distance"`
	Remarks       string    `json:"remarks,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// TotalHours returns the sum of all four duty-status buckets.
// A fully balanced log accounts for the whole 24-hour day.
func (l DailyLog) TotalHours() float64 {
	return l.OffDutyHours + l.SleeperHours + l.DrivingHours + l.OnDutyHours
}
