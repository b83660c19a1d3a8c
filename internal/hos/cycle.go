package hos

// cycleTracker tracks hours consumed against the rolling duty cycle cap.
// It is created once per schedule run and debited after each simulated day.
type cycleTracker struct {
	rules     Rules
	remaining float64
}

// newCycleTracker starts a tracker with the cycle hours the driver has
// already used.
func newCycleTracker(rules Rules, hoursUsed float64) *cycleTracker {
	return &cycleTracker{rules: rules, remaining: rules.MaxCycleHours - hoursUsed}
}

// Remaining returns the hours left in the cycle, never negative.
func (c *cycleTracker) Remaining() float64 {
	if c.remaining < 0 {
		return 0
	}
	return c.remaining
}

// DrivingCapForDay returns the most a driver may drive on the next day:
// the continuous-driving limit, further capped by what is left in the cycle.
func (c *cycleTracker) DrivingCapForDay() float64 {
	return min(c.rules.MaxContinuousDriving, c.Remaining())
}

// Debit charges a completed day's driving + on-duty hours against the cycle.
func (c *cycleTracker) Debit(hours float64) {
	c.remaining -= hours
}
