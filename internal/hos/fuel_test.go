package hos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/hos"
)

func TestFuelStopCount(t *testing.T) {
	rules := hos.DefaultRules()

	cases := []struct {
		miles float64
		want  int
	}{
		{0, 0},
		{300, 0},
		{999.9, 0},
		{1000, 0},
		{1000.1, 1},
		{1200, 1},
		{2000, 1},
		{2500, 2},
		{4500, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, hos.FuelStopCount(rules, c.miles), "miles=%v", c.miles)
	}
}

func TestPlanFuelStops_DistanceMarkersOnly(t *testing.T) {
	stops := hos.PlanFuelStops(hos.DefaultRules(), 2500, nil, nil)

	require.Len(t, stops, 2)
	assert.Equal(t, 1000.0, stops[0].DistanceAtMiles)
	assert.Equal(t, 2000.0, stops[1].DistanceAtMiles)
	assert.Equal(t, 0.5, stops[0].DurationHours)
	assert.Nil(t, stops[0].Position)
}

func TestPlanFuelStops_InterpolatesCoordinates(t *testing.T) {
	origin := &domain.Coordinate{Lat: 40, Lng: -80}
	dest := &domain.Coordinate{Lat: 30, Lng: -100}

	stops := hos.PlanFuelStops(hos.DefaultRules(), 2000, origin, dest)

	require.Len(t, stops, 1)
	require.NotNil(t, stops[0].Position)
	// 1000 of 2000 miles: halfway between the endpoints.
	assert.InDelta(t, 35.0, stops[0].Position.Lat, 1e-9)
	assert.InDelta(t, -90.0, stops[0].Position.Lng, 1e-9)
}

func TestPlanFuelStops_NeverAtOrBeyondFinalMile(t *testing.T) {
	stops := hos.PlanFuelStops(hos.DefaultRules(), 3000, nil, nil)

	for _, s := range stops {
		assert.Less(t, s.DistanceAtMiles, 3000.0)
	}
}

func TestPlanFuelStops_ShortTripEmpty(t *testing.T) {
	assert.Empty(t, hos.PlanFuelStops(hos.DefaultRules(), 600, nil, nil))
}
