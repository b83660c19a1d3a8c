package hos

import "github.com/haulwell/eld-planner/backend/internal/domain"

// breakReason is the tag recorded on rest breaks inserted between segments.
const breakReason = "Mandatory 30-min rest"

// splitTotals are the unrounded sums of a day's split, used to advance the
// simulation state. The segments themselves carry rounded values for output.
type splitTotals struct {
	DrivenHours float64
	Miles       float64
	BreakHours  float64
}

// splitDriving divides a day's driving budget into legal continuous-driving
// segments with a mandatory break between successive segments.
//
// budget is the driving time available today (already capped by the duty
// window and the cycle tracker). remainingMiles bounds the distance so the
// last segment never drives past the end of the trip.
//
// A break is appended only between two segments of the same day, never after
// the final one. Break time counts as on-duty time; the day simulator charges
// the returned BreakHours against the duty window.
func splitDriving(rules Rules, budget, remainingMiles float64) ([]domain.DrivingSegment, []domain.RestBreak, splitTotals) {
	segments := []domain.DrivingSegment{}
	breaks := []domain.RestBreak{}
	var totals splitTotals

	for totals.DrivenHours < budget-epsilon && remainingMiles > epsilon {
		dur := min(rules.MaxContinuousDriving, budget-totals.DrivenHours)
		dist := min(dur*rules.HighwaySpeedMPH, remainingMiles)

		segments = append(segments, domain.DrivingSegment{
			DurationHours: round2(dur),
			DistanceMiles: round2(dist),
		})

		totals.DrivenHours += dur
		totals.Miles += dist
		remainingMiles -= dist

		if totals.DrivenHours < budget-epsilon && remainingMiles > epsilon {
			breaks = append(breaks, domain.RestBreak{
				DurationHours: rules.MandatoryBreak,
				Reason:        breakReason,
			})
			totals.BreakHours += rules.MandatoryBreak
		}
	}

	return segments, breaks, totals
}
