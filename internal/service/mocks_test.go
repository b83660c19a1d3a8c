package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/repo"
)

// Hand-written test doubles for the repo interfaces.
// Each method is a function field — set only the ones your test needs.

type mockTripRepo struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context, params domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, params)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

type mockLogRepo struct {
	createBatch  func(ctx context.Context, logs []domain.DailyLog) ([]domain.DailyLog, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error)
}

func (m *mockLogRepo) CreateBatch(ctx context.Context, logs []domain.DailyLog) ([]domain.DailyLog, error) {
	return m.createBatch(ctx, logs)
}
func (m *mockLogRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error) {
	return m.listByTripID(ctx, tripID)
}

type mockRouteRepo struct {
	create      func(ctx context.Context, route domain.Route) (domain.Route, error)
	getByTripID func(ctx context.Context, tripID uuid.UUID) (domain.Route, error)
}

func (m *mockRouteRepo) Create(ctx context.Context, route domain.Route) (domain.Route, error) {
	return m.create(ctx, route)
}
func (m *mockRouteRepo) GetByTripID(ctx context.Context, tripID uuid.UUID) (domain.Route, error) {
	return m.getByTripID(ctx, tripID)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo  = (*mockTripRepo)(nil)
	_ repo.LogRepo   = (*mockLogRepo)(nil)
	_ repo.RouteRepo = (*mockRouteRepo)(nil)
)

// echoTripRepo echoes created trips back with a fresh ID — useful for plan
// tests that only care about orchestration, not DB behavior.
func echoTripRepo() *mockTripRepo {
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) {
			t.ID = uuid.New()
			return t, nil
		},
	}
}

func echoLogRepo() *mockLogRepo {
	return &mockLogRepo{
		createBatch: func(_ context.Context, logs []domain.DailyLog) ([]domain.DailyLog, error) {
			return logs, nil
		},
	}
}

func echoRouteRepo() *mockRouteRepo {
	return &mockRouteRepo{
		create: func(_ context.Context, r domain.Route) (domain.Route, error) {
			r.ID = uuid.New()
			return r, nil
		},
	}
}
