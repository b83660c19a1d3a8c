package hos

import (
	"math"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// FuelStopCount returns how many fuel stops a trip of the given distance
// requires: one per full fuel interval, excluding a stop at or beyond the
// final mile. Never negative.
func FuelStopCount(rules Rules, distanceMiles float64) int {
	if distanceMiles <= 0 {
		return 0
	}
	n := int(math.Ceil(distanceMiles/rules.FuelIntervalMiles)) - 1
	if n < 0 {
		return 0
	}
	return n
}

// PlanFuelStops places fuel stops at every fuel-interval boundary strictly
// before the end of the trip. When both endpoint coordinates are known each
// stop's position is linearly interpolated between them by distance ratio;
// otherwise only distance markers are produced.
func PlanFuelStops(rules Rules, distanceMiles float64, origin, dest *domain.Coordinate) []domain.FuelStop {
	count := FuelStopCount(rules, distanceMiles)
	stops := make([]domain.FuelStop, 0, count)

	for i := 1; i <= count; i++ {
		at := float64(i) * rules.FuelIntervalMiles
		ratio := at / distanceMiles
		if ratio >= 1 {
			break
		}

		stop := domain.FuelStop{
			DistanceAtMiles: round2(at),
			DurationHours:   rules.FuelStopHours,
		}
		if origin != nil && dest != nil {
			stop.Position = &domain.Coordinate{
				Lat: origin.Lat + (dest.Lat-origin.Lat)*ratio,
				Lng: origin.Lng + (dest.Lng-origin.Lng)*ratio,
			}
		}
		stops = append(stops, stop)
	}

	return stops
}
