package hos

import (
	"fmt"
	"time"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// Planner generates HOS-compliant schedules under a fixed rule set.
// The zero value is not usable; construct with NewPlanner.
type Planner struct {
	rules Rules
}

// NewPlanner returns a Planner operating under the given rules.
func NewPlanner(rules Rules) *Planner {
	return &Planner{rules: rules}
}

// Rules returns the rule set the planner was constructed with.
func (p *Planner) Rules() Rules {
	return p.rules
}

// Schedule produces the day-by-day duty schedule for a trip.
//
// Validation failures (negative distance, cycle hours outside the legal
// range) return domain.ErrValidation before any simulation state exists.
// All other conditions degrade into a best-effort deterministic result;
// in particular, hitting the day-count safety cap marks the result
// Truncated instead of returning an error.
func (p *Planner) Schedule(req domain.TripRequest) (domain.ScheduleResult, error) {
	if err := p.validate(req); err != nil {
		return domain.ScheduleResult{}, err
	}

	start := req.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	tracker := newCycleTracker(p.rules, req.CycleHoursUsed)

	state := simulationState{
		Date:            dateOnly(start),
		RemainingMiles:  req.TotalDistanceMiles,
		RemainingDrive:  req.TotalDistanceMiles / p.rules.HighwaySpeedMPH,
		RemainingOnDuty: p.onDutyObligations(req),
	}

	var days []domain.DailySchedule
	truncated := false

	for !state.done() {
		if len(days) >= p.rules.MaxScheduleDays {
			truncated = true
			break
		}
		var day domain.DailySchedule
		day, state = simulateDay(p.rules, tracker, state)
		days = append(days, day)
	}

	if days == nil {
		days = []domain.DailySchedule{}
	}

	return domain.ScheduleResult{
		DailySchedules:             days,
		TotalDays:                  len(days),
		TotalDistanceMiles:         round2(req.TotalDistanceMiles),
		AvailableDrivingHoursToday: round2(tracker.DrivingCapForDay()),
		RemainingCycleHours:        round2(tracker.Remaining()),
		Truncated:                  truncated,
	}, nil
}

// onDutyObligations sums the non-driving duty time a trip owes: pickup,
// dropoff, and one fuel stop per full fuel interval.
func (p *Planner) onDutyObligations(req domain.TripRequest) float64 {
	total := p.rules.PickupDropoffHours // dropoff always happens
	if req.HasPickup {
		total += p.rules.PickupDropoffHours
	}
	total += float64(FuelStopCount(p.rules, req.TotalDistanceMiles)) * p.rules.FuelStopHours
	return total
}

func (p *Planner) validate(req domain.TripRequest) error {
	if req.TotalDistanceMiles < 0 {
		return fmt.Errorf("%w: total_distance_miles must not be negative", domain.ErrValidation)
	}
	if req.CycleHoursUsed < 0 || req.CycleHoursUsed > p.rules.MaxCycleHours {
		return fmt.Errorf("%w: cycle_hours_used must be between 0 and %g", domain.ErrValidation, p.rules.MaxCycleHours)
	}
	return nil
}
