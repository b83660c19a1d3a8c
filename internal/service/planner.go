// Package service contains the business logic for the ELD Trip Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo,
// routing, and HOS engine calls. No SQL and no HTTP lives here.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/hos"
	"github.com/haulwell/eld-planner/backend/internal/repo"
	"github.com/haulwell/eld-planner/backend/internal/routing"
)

// PlanInput is the request to plan a new trip.
type PlanInput struct {
	CurrentLocation  string  `json:"current_location"`
	PickupLocation   string  `json:"pickup_location"`
	DropoffLocation  string  `json:"dropoff_location"`
	CurrentCycleUsed float64 `json:"current_cycle_used"`
}

// PlanOutput bundles everything produced for a planned trip: the persisted
// trip record, the resolved route, the generated schedule, and the stored
// daily logs.
type PlanOutput struct {
	Trip     domain.Trip           `json:"trip"`
	Route    domain.RouteInfo      `json:"route"`
	Schedule domain.ScheduleResult `json:"schedule"`
	Logs     []domain.DailyLog     `json:"daily_logs"`
}

// PlannerService plans trips: geocode, route, generate the HOS schedule,
// and persist the results.
type PlannerService struct {
	trips    repo.TripRepo
	logs     repo.LogRepo
	routes   repo.RouteRepo
	geocoder routing.Geocoder
	router   routing.RouteProvider
	planner  *hos.Planner
}

// NewPlannerService constructs a PlannerService from its collaborators.
func NewPlannerService(
	trips repo.TripRepo,
	logs repo.LogRepo,
	routes repo.RouteRepo,
	geocoder routing.Geocoder,
	router routing.RouteProvider,
	planner *hos.Planner,
) *PlannerService {
	return &PlannerService{
		trips:    trips,
		logs:     logs,
		routes:   routes,
		geocoder: geocoder,
		router:   router,
		planner:  planner,
	}
}

// Plan runs the full pipeline for a trip request:
// current → pickup → dropoff is geocoded and routed, the HOS engine
// generates the day-by-day schedule, and trip, route, and daily logs are
// persisted. Nothing is written before all inputs resolve.
func (s *PlannerService) Plan(ctx context.Context, in PlanInput) (PlanOutput, error) {
	if err := validatePlanInput(in, s.planner.Rules().MaxCycleHours); err != nil {
		return PlanOutput{}, err
	}

	current, err := s.geocodeField(ctx, "current_location", in.CurrentLocation)
	if err != nil {
		return PlanOutput{}, err
	}
	pickup, err := s.geocodeField(ctx, "pickup_location", in.PickupLocation)
	if err != nil {
		return PlanOutput{}, err
	}
	dropoff, err := s.geocodeField(ctx, "dropoff_location", in.DropoffLocation)
	if err != nil {
		return PlanOutput{}, err
	}

	route, err := s.router.Route(ctx, current, pickup, dropoff)
	if err != nil {
		return PlanOutput{}, fmt.Errorf("service.PlannerService.Plan: route: %w: %v", domain.ErrUpstream, err)
	}

	rules := s.planner.Rules()
	route.FuelStops = hos.PlanFuelStops(rules, route.DistanceMiles, &current, &dropoff)

	schedule, err := s.planner.Schedule(domain.TripRequest{
		TotalDistanceMiles: route.DistanceMiles,
		CycleHoursUsed:     in.CurrentCycleUsed,
		HasPickup:          true,
	})
	if err != nil {
		return PlanOutput{}, fmt.Errorf("service.PlannerService.Plan: schedule: %w", err)
	}

	trip, err := s.trips.Create(ctx, domain.Trip{
		CurrentLocation:   in.CurrentLocation,
		PickupLocation:    in.PickupLocation,
		DropoffLocation:   in.DropoffLocation,
		CurrentCycleUsed:  in.CurrentCycleUsed,
		TotalDistance:     route.DistanceMiles,
		EstimatedDuration: route.DurationHours,
	})
	if err != nil {
		return PlanOutput{}, fmt.Errorf("service.PlannerService.Plan: create trip: %w", err)
	}

	if _, err := s.routes.Create(ctx, domain.Route{
		TripID:    trip.ID,
		Polyline:  route.Polyline,
		Waypoints: route.Waypoints,
		FuelStops: route.FuelStops,
	}); err != nil {
		return PlanOutput{}, fmt.Errorf("service.PlannerService.Plan: create route: %w", err)
	}

	logs, err := s.logs.CreateBatch(ctx, logsFromSchedule(trip.ID, schedule))
	if err != nil {
		return PlanOutput{}, fmt.Errorf("service.PlannerService.Plan: create logs: %w", err)
	}

	return PlanOutput{
		Trip:     trip,
		Route:    route,
		Schedule: schedule,
		Logs:     logs,
	}, nil
}

// geocodeField resolves one address, translating a not-found result into a
// validation error naming the offending field.
func (s *PlannerService) geocodeField(ctx context.Context, field, address string) (domain.Coordinate, error) {
	coord, err := s.geocoder.Geocode(ctx, address)
	if err == nil {
		return coord, nil
	}
	if isNotFound(err) {
		return domain.Coordinate{}, fmt.Errorf("%w: could not geocode %s", domain.ErrValidation, field)
	}
	return domain.Coordinate{}, fmt.Errorf("service.PlannerService.Plan: geocode %s: %w", field, err)
}

// logsFromSchedule converts the generated schedule into persistable daily logs.
// Each day's total distance is the sum of its driving segments.
func logsFromSchedule(tripID uuid.UUID, schedule domain.ScheduleResult) []domain.DailyLog {
	logs := make([]domain.DailyLog, 0, len(schedule.DailySchedules))
	for i, day := range schedule.DailySchedules {
		var miles float64
		for _, seg := range day.DrivingSegments {
			miles += seg.DistanceMiles
		}
		logs = append(logs, domain.DailyLog{
			TripID:        tripID,
			LogDate:       day.Date,
			OffDutyHours:  day.OffDutyHours,
			SleeperHours:  day.SleeperHours,
			DrivingHours:  day.DrivingHours,
			OnDutyHours:   day.OnDutyHours,
			TotalDistance: miles,
			Remarks:       fmt.Sprintf("Day %d of %d", i+1, schedule.TotalDays),
		})
	}
	return logs
}

// isNotFound reports whether err wraps domain.ErrNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// validatePlanInput enforces the request-level business rules.
//   - All three locations must be non-empty (whitespace-only is rejected).
//   - Cycle hours must be within [0, max].
func validatePlanInput(in PlanInput, maxCycleHours float64) error {
	for field, v := range map[string]string{
		"current_location": in.CurrentLocation,
		"pickup_location":  in.PickupLocation,
		"dropoff_location": in.DropoffLocation,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, field)
		}
	}
	if in.CurrentCycleUsed < 0 || in.CurrentCycleUsed > maxCycleHours {
		return fmt.Errorf("%w: current_cycle_used must be between 0 and %g", domain.ErrValidation, maxCycleHours)
	}
	return nil
}
