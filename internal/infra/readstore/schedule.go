package readstore

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ScheduleReadStore serves the read side of availability computation.
type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

func (r *ScheduleReadStore) ProfessionalByID(ctx context.Context, id uuid.UUID) (*queries.ProfessionalSummary, error) {
	var p queries.ProfessionalSummary
	err := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM professionals
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("professional not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find professional", err)
	}
	return &p, nil
}

func (r *ScheduleReadStore) WorkingWindow(ctx context.Context, professionalID uuid.UUID, weekday int) (schedule.WorkingWindow, error) {
	var w schedule.WorkingWindow
	err := r.db.QueryRow(ctx, `
		SELECT start_minutes, end_minutes
		FROM working_hours
		WHERE professional_id = $1 AND weekday = $2
	`, professionalID, weekday).Scan(&w.StartMinutes, &w.EndMinutes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkingWindow{}, infra.WrapRepoErr("no working hours for weekday", err, infra.KindNotFound)
		}
		return schedule.WorkingWindow{}, infra.WrapRepoErr("failed to find working hours", err)
	}
	return w, nil
}

func (r *ScheduleReadStore) OccupyingIntervals(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT starts_at, ends_at
		FROM appointments
		WHERE professional_id = $1
			AND status IN ('PENDING', 'CONFIRMED')
			AND starts_at >= $2
			AND starts_at <= $3
		ORDER BY starts_at ASC
	`, professionalID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupying appointments", err)
	}
	return scanIntervals(rows)
}

func (r *ScheduleReadStore) BreakIntervals(ctx context.Context, professionalID uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, `
		SELECT starts_at, ends_at
		FROM breaks
		WHERE professional_id = $1
			AND starts_at >= $2
			AND starts_at <= $3
		ORDER BY starts_at ASC
	`, professionalID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list breaks", err)
	}
	return scanIntervals(rows)
}

func (r *ScheduleReadStore) MinActiveServiceMinutes(ctx context.Context, professionalID uuid.UUID) (int32, error) {
	var minutes int32
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(MIN(s.duration_minutes), 0)
		FROM services s
		JOIN professional_services ps ON ps.service_id = s.id
		WHERE ps.professional_id = $1 AND s.active
	`, professionalID).Scan(&minutes)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute minimum service duration", err)
	}
	return minutes, nil
}

func scanIntervals(rows pgx.Rows) ([]schedule.Interval, error) {
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var iv schedule.Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		intervals = append(intervals, iv)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read interval rows", rows.Err())
	}
	return intervals, nil
}
