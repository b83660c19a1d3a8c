package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/service"
)

func storedTrip() domain.Trip {
	return domain.Trip{
		ID:               uuid.New(),
		CurrentLocation:  "Chicago, IL",
		PickupLocation:   "Joliet, IL",
		DropoffLocation:  "Denver, CO",
		CurrentCycleUsed: 12.5,
		TotalDistance:    1003.2,
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
}

func TestTripService_GetByID_Found(t *testing.T) {
	want := storedTrip()
	trips := &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			return want, nil
		},
	}
	svc := service.NewTripService(trips, &mockLogRepo{}, &mockRouteRepo{})

	got, err := svc.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(trips, &mockLogRepo{}, &mockRouteRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List_Empty(t *testing.T) {
	trips := &mockTripRepo{
		list: func(_ context.Context, _ domain.PaginationParams) ([]domain.Trip, int64, error) {
			return nil, 0, nil
		},
	}
	svc := service.NewTripService(trips, &mockLogRepo{}, &mockRouteRepo{})

	got, total, err := svc.List(context.Background(), domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	// Should return an empty slice, not nil — callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, total)
}

func TestTripService_LogsByTrip(t *testing.T) {
	trip := storedTrip()
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) { return trip, nil },
	}
	logs := &mockLogRepo{
		listByTripID: func(_ context.Context, tripID uuid.UUID) ([]domain.DailyLog, error) {
			return []domain.DailyLog{{TripID: tripID, DrivingHours: 11}}, nil
		},
	}
	svc := service.NewTripService(trips, logs, &mockRouteRepo{})

	got, err := svc.LogsByTrip(context.Background(), trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, trip.ID, got[0].TripID)
}

func TestTripService_LogsByTrip_TripMissing(t *testing.T) {
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(trips, &mockLogRepo{}, &mockRouteRepo{})

	_, err := svc.LogsByTrip(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_RouteByTrip_NotFound(t *testing.T) {
	routes := &mockRouteRepo{
		getByTripID: func(_ context.Context, _ uuid.UUID) (domain.Route, error) {
			return domain.Route{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(&mockTripRepo{}, &mockLogRepo{}, routes)

	_, err := svc.RouteByTrip(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_Delete_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		delete: func(_ context.Context, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewTripService(trips, &mockLogRepo{}, &mockRouteRepo{})

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
