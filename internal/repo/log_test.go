package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haulwell/eld-planner/backend/internal/domain"
	"github.com/haulwell/eld-planner/backend/internal/repo"
)

func logFixtures(tripID uuid.UUID) []domain.DailyLog {
	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return []domain.DailyLog{
		{
			TripID:        tripID,
			LogDate:       day1,
			DrivingHours:  11,
			OnDutyHours:   3,
			SleeperHours:  10,
			TotalDistance: 660,
			Remarks:       "Day 1 of 2",
		},
		{
			TripID:        tripID,
			LogDate:       day1.AddDate(0, 0, 1),
			DrivingHours:  9,
			OffDutyHours:  15,
			TotalDistance: 540,
			Remarks:       "Day 2 of 2",
		},
	}
}

func TestLogRepo_CreateBatchAndList(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	logs := repo.NewLogRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	created, err := logs.CreateBatch(ctx, logFixtures(trip.ID))
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, uuid.Nil, created[0].ID)
	assert.Equal(t, trip.ID, created[0].TripID)

	listed, err := logs.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.True(t, listed[0].LogDate.Before(listed[1].LogDate), "logs should be in calendar order")
	assert.Equal(t, 11.0, listed[0].DrivingHours)
	assert.Equal(t, "Day 2 of 2", listed[1].Remarks)
}

func TestLogRepo_ListByTripID_Empty(t *testing.T) {
	logs := repo.NewLogRepo(newTestTx(t))

	listed, err := logs.ListByTripID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestLogRepo_CascadeDeleteWithTrip(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	logs := repo.NewLogRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	_, err = logs.CreateBatch(ctx, logFixtures(trip.ID))
	require.NoError(t, err)

	require.NoError(t, trips.Delete(ctx, trip.ID))

	listed, err := logs.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
