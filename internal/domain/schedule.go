package domain

import "time"

// TripRequest is the immutable input to the HOS schedule generator.
// StartDate's zero value means "start today".
type TripRequest struct {
	TotalDistanceMiles float64   `json:"total_distance_miles"`
	CycleHoursUsed     float64   `json:"cycle_hours_used"`
	HasPickup          bool      `json:"has_pickup"`
	StartDate          time.Time `json:"start_date,omitempty"`
}

// DrivingSegment is one continuous stretch of driving within a day.
// DurationHours never exceeds the continuous-driving limit (11h).
type DrivingSegment struct {
	DurationHours float64 `json:"duration"`
	DistanceMiles float64 `json:"distance"`
}

// RestBreak is a pause between driving segments. Reason is a short tag
// such as "Mandatory 30-min rest".
type RestBreak struct {
	DurationHours float64 `json:"duration"`
	Reason        string  `json:"reason"`
}

// FuelStop marks a refueling point along the route. Position is nil when
// endpoint coordinates were not available to interpolate from.
type FuelStop struct {
	DistanceAtMiles float64     `json:"distance_at"`
	DurationHours   float64     `json:"duration_hours"`
	Position        *Coordinate `json:"position,omitempty"`
}

// DailySchedule is one calendar day of the generated schedule: the four
// duty-status hour buckets plus the ordered driving segments and rest
// breaks that produced them.
type DailySchedule struct {
	Date            time.Time        `json:"date"`
	OffDutyHours    float64          `json:"off_duty_hours"`
	SleeperHours    float64          `json:"sleeper_berth_hours"`
	DrivingHours    float64          `json:"driving_hours"`
	OnDutyHours     float64          `json:"on_duty_hours"`
	DrivingSegments []DrivingSegment `json:"driving_segments"`
	RestBreaks      []RestBreak      `json:"rest_breaks"`
}

// ScheduleResult is the full multi-day output of the HOS engine.
// Truncated is set when the day-count safety cap was reached before all
// distance and on-duty obligations were consumed; the schedule up to that
// point is still returned.
type ScheduleResult struct {
	DailySchedules             []DailySchedule `json:"daily_schedules"`
	TotalDays                  int             `json:"total_days"`
	TotalDistanceMiles         float64         `json:"total_distance"`
	AvailableDrivingHoursToday float64         `json:"available_driving_hours_today"`
	RemainingCycleHours        float64         `json:"remaining_cycle_hours"`
	Truncated                  bool            `json:"truncated,omitempty"`
}
