package hos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleTracker_Remaining(t *testing.T) {
	c := newCycleTracker(DefaultRules(), 30)

	assert.Equal(t, 40.0, c.Remaining())
}

func TestCycleTracker_RemainingClampedAtZero(t *testing.T) {
	c := newCycleTracker(DefaultRules(), 68)

	c.Debit(5) // overdraw past the cap

	assert.Equal(t, 0.0, c.Remaining())
	assert.Equal(t, 0.0, c.DrivingCapForDay())
}

func TestCycleTracker_DrivingCapForDay_LimitedByDrivingRule(t *testing.T) {
	c := newCycleTracker(DefaultRules(), 0)

	// A fresh cycle still caps at the continuous-driving limit.
	assert.Equal(t, 11.0, c.DrivingCapForDay())
}

func TestCycleTracker_DrivingCapForDay_LimitedByCycle(t *testing.T) {
	c := newCycleTracker(DefaultRules(), 68)

	assert.Equal(t, 2.0, c.DrivingCapForDay())
}

func TestCycleTracker_DebitAccumulates(t *testing.T) {
	c := newCycleTracker(DefaultRules(), 0)

	c.Debit(13.5)
	c.Debit(9)

	assert.InDelta(t, 47.5, c.Remaining(), 1e-9)
}
