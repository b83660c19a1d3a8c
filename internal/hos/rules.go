// Package hos implements the Hours-of-Service schedule generator.
//
// Given a trip's total driving distance and the hours a driver has already
// accumulated in the rolling duty cycle, it produces a day-by-day duty-status
// schedule (driving, on-duty, off-duty, sleeper berth) that respects the
// continuous-driving limit, the daily duty window, mandatory rest breaks, the
// cycle cap, and fuel-stop spacing.
//
// The engine is a pure, synchronous computation: no I/O, no clocks beyond the
// caller-supplied start date, no shared state. Two calls with the same
// TripRequest produce identical results.
package hos

import (
	"math"
	"time"
)

// Rules is the immutable regulatory rule set the planner operates under.
// Construct a Planner with DefaultRules for the FMCSA 70-hour/8-day cycle,
// or with a modified copy for other jurisdictions.
type Rules struct {
	// MaxContinuousDriving is the longest single driving stretch, in hours.
	MaxContinuousDriving float64
	// DutyWindow is the daily span, in hours, within which all driving and
	// on-duty work must fit.
	DutyWindow float64
	// MandatoryBreak is the rest inserted between driving segments, in hours.
	MandatoryBreak float64
	// SleeperBerthReset is the full rest period, in hours, assigned when a
	// day's duty window is exhausted.
	SleeperBerthReset float64
	// MaxCycleHours caps total driving + on-duty hours across CycleDays.
	MaxCycleHours float64
	// CycleDays is the length of the rolling duty cycle, in days.
	CycleDays int
	// FuelIntervalMiles is the distance between mandatory fuel stops.
	FuelIntervalMiles float64
	// FuelStopHours is the on-duty time consumed by one fuel stop.
	FuelStopHours float64
	// PickupDropoffHours is the on-duty time for a pickup or a dropoff.
	PickupDropoffHours float64
	// HighwaySpeedMPH converts driving hours to miles and back.
	HighwaySpeedMPH float64
	// MaxScheduleDays bounds the day loop so pathological inputs cannot
	// spin forever. When the cap is reached before all obligations are
	// consumed the result is marked Truncated rather than discarded.
	MaxScheduleDays int
}

// DefaultRules returns the FMCSA property-carrying driver rule set
// (70-hour/8-day cycle).
func DefaultRules() Rules {
	return Rules{
		MaxContinuousDriving: 11,
		DutyWindow:           14,
		MandatoryBreak:       0.5,
		SleeperBerthReset:    10,
		MaxCycleHours:        70,
		CycleDays:            8,
		FuelIntervalMiles:    1000,
		FuelStopHours:        0.5,
		PickupDropoffHours:   1,
		HighwaySpeedMPH:      60,
		MaxScheduleDays:      10,
	}
}

// hoursPerDay is the length of one calendar day on the log grid.
const hoursPerDay = 24.0

// epsilon guards float comparisons when draining hour and mile budgets.
const epsilon = 1e-9

// dateOnly truncates t to midnight, keeping its location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// round2 rounds to two decimal places, matching how hours and miles are
// reported on log sheets.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
