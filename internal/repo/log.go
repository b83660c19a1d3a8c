package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/haulwell/eld-planner/backend/internal/domain"
)

// LogRepo defines the persistence operations for daily ELD logs.
// Logs are written once, as a batch, when a trip's schedule is generated.
type LogRepo interface {
	// CreateBatch inserts one row per daily log and returns the persisted
	// records in log_date order.
	CreateBatch(ctx context.Context, logs []domain.DailyLog) ([]domain.DailyLog, error)

	// ListByTripID returns all logs for a trip ordered by log_date ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error)
}

// pgLogRepo is the Postgres implementation of LogRepo.
type pgLogRepo struct {
	db db
}

// NewLogRepo constructs a LogRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLogRepo(db db) LogRepo {
	return &pgLogRepo{db: db}
}

// CreateBatch inserts the logs one statement at a time; callers that need
// atomicity should pass a transaction as the db.
func (r *pgLogRepo) CreateBatch(ctx context.Context, logs []domain.DailyLog) ([]domain.DailyLog, error) {
	const q = `
		INSERT INTO daily_logs (trip_id, log_date, off_duty_hours, sleeper_berth_hours,
		                        driving_hours, on_duty_hours, total_distance, remarks)
		VALUES (@trip_id, @log_date, @off_duty_hours, @sleeper_berth_hours,
		        @driving_hours, @on_duty_hours, @total_distance, @remarks)
		RETURNING id, trip_id, log_date, off_duty_hours, sleeper_berth_hours,
		          driving_hours, on_duty_hours, total_distance, remarks, created_at`

	out := make([]domain.DailyLog, 0, len(logs))
	for _, l := range logs {
		args := pgx.NamedArgs{
			"trip_id":             l.TripID,
			"log_date":            l.LogDate,
			"off_duty_hours":      l.OffDutyHours,
			"sleeper_berth_hours": l.SleeperHours,
			"driving_hours":       l.DrivingHours,
			"on_duty_hours":       l.OnDutyHours,
			"total_distance":      l.TotalDistance,
			"remarks":             l.Remarks,
		}

		row := r.db.QueryRow(ctx, q, args)
		created, err := scanDailyLog(row)
		if err != nil {
			return nil, fmt.Errorf("repo.LogRepo.CreateBatch: %w", err)
		}
		out = append(out, created)
	}
	return out, nil
}

// ListByTripID returns all logs for a trip in calendar order.
func (r *pgLogRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DailyLog, error) {
	const q = `
		SELECT id, trip_id, log_date, off_duty_hours, sleeper_berth_hours,
		       driving_hours, on_duty_hours, total_distance, remarks, created_at
		FROM daily_logs
		WHERE trip_id = @trip_id
		ORDER BY log_date ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.LogRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var logs []domain.DailyLog
	for rows.Next() {
		l, err := scanDailyLog(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LogRepo.ListByTripID: scan: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LogRepo.ListByTripID: rows: %w", err)
	}

	return logs, nil
}

// scanDailyLog maps a single database row into a domain.DailyLog.
func scanDailyLog(s scanner) (domain.DailyLog, error) {
	var (
		l       domain.DailyLog
		id      pgtype.UUID
		tripID  pgtype.UUID
		logDate pgtype.Date
	)

	err := s.Scan(&id, &tripID, &logDate, &l.OffDutyHours, &l.SleeperHours,
		&l.DrivingHours, &l.OnDutyHours, &l.TotalDistance, &l.Remarks, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DailyLog{}, domain.ErrNotFound
		}
		return domain.DailyLog{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.TripID = uuid.UUID(tripID.Bytes)
	l.LogDate = logDate.Time
	return l, nil
}
