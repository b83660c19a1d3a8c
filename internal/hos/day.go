package hos

import (
	"time"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// simulationState carries the loop state between day steps. Each step
// receives a state by value and returns the next one, so a single day's
// allocation can be tested in isolation. Values stay unrounded here;
// rounding happens only on the reported DailySchedule.
type simulationState struct {
	Date            time.Time
	RemainingMiles  float64
	RemainingDrive  float64 // driving hours still owed for the trip
	RemainingOnDuty float64 // pickup/dropoff/fuel hours still owed
}

// done reports whether all distance and on-duty obligations are consumed.
func (s simulationState) done() bool {
	return s.RemainingMiles <= epsilon && s.RemainingOnDuty <= epsilon
}

// simulateDay allocates one calendar day of duty statuses and returns the
// advanced state. The cycle tracker is debited with the day's driving +
// on-duty hours as a side effect; everything else flows through the state.
//
// Allocation order within the day:
//  1. Driving, capped by the cycle tracker, the trip's remaining driving
//     time, and the duty window minus one reserved mandatory break.
//  2. In-day rest breaks between driving segments (counted as on-duty).
//  3. Remaining on-duty obligations up to the leftover duty window.
//  4. The balance of the 24h day as off-duty, or a full sleeper-berth
//     reset when the duty window was exhausted.
func simulateDay(rules Rules, tracker *cycleTracker, state simulationState) (domain.DailySchedule, simulationState) {
	budget := min(tracker.DrivingCapForDay(), state.RemainingDrive, rules.DutyWindow-rules.MandatoryBreak)
	if budget < 0 {
		budget = 0
	}

	segments, breaks, totals := splitDriving(rules, budget, state.RemainingMiles)

	day := domain.DailySchedule{
		Date:            state.Date,
		DrivingHours:    round2(totals.DrivenHours),
		DrivingSegments: segments,
		RestBreaks:      breaks,
	}

	// On-duty work fills whatever duty window is left after driving and the
	// in-day breaks, so driving + on-duty never exceeds the window.
	windowLeft := rules.DutyWindow - totals.DrivenHours - totals.BreakHours
	if windowLeft < 0 {
		windowLeft = 0
	}
	onDuty := min(state.RemainingOnDuty, windowLeft)
	day.OnDutyHours = round2(totals.BreakHours + onDuty)

	used := day.DrivingHours + day.OnDutyHours
	if used < rules.DutyWindow-epsilon {
		day.OffDutyHours = round2(hoursPerDay - used)
	} else {
		day.SleeperHours = rules.SleeperBerthReset
	}

	tracker.Debit(day.DrivingHours + day.OnDutyHours)

	next := state
	next.Date = state.Date.AddDate(0, 0, 1)
	next.RemainingMiles = clampZero(state.RemainingMiles - totals.Miles)
	next.RemainingDrive = clampZero(state.RemainingDrive - totals.DrivenHours)
	next.RemainingOnDuty = clampZero(state.RemainingOnDuty - onDuty)
	return day, next
}

func clampZero(v float64) float64 {
	if v < epsilon {
		return 0
	}
	return v
}
