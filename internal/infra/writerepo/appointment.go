package writerepo

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	exclusionViolation  = "23P01"
	foreignKeyViolation = "23503"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) OccupyingIntervals(
	ctx context.Context, dbtx db.DBTX, professionalID uuid.UUID, from, to time.Time,
) ([]schedule.Interval, error) {
	rows, err := dbtx.Query(ctx, `
		SELECT starts_at, ends_at
		FROM appointments
		WHERE professional_id = $1
			AND status IN ('PENDING', 'CONFIRMED')
			AND starts_at < $3
			AND ends_at > $2
		ORDER BY starts_at
	`, professionalID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query occupying intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupying interval", err)
		}
		intervals = append(intervals, schedule.NewInterval(start, end))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupying intervals", err)
	}
	return intervals, nil
}

// Create inserts the appointment. The appointments table carries a range
// exclusion constraint over occupying rows, so an overlap that slipped past
// the in-transaction check still surfaces here as KindConflict.
func (r *AppointmentRepository) Create(
	ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment,
) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, `
		INSERT INTO appointments (id, user_id, professional_id, service_id, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		appt.ID(), appt.UserID(), appt.ProfessionalID(), appt.ServiceID(),
		appt.StartsAt(), appt.EndsAt(), appt.Status(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case exclusionViolation:
				return uuid.Nil, infra.WrapRepoErr("appointment overlaps an existing booking", err, infra.KindConflict)
			case foreignKeyViolation:
				return uuid.Nil, infra.WrapRepoErr("appointment references a missing row", err, infra.KindForeignKeyViolated)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) FindForUpdate(
	ctx context.Context, dbtx db.DBTX, id uuid.UUID,
) (*appointment.Appointment, error) {
	var (
		apptID, userID, professionalID, serviceID uuid.UUID
		startsAt, endsAt, createdAt, updatedAt    time.Time
		rawStatus                                 string
	)
	err := dbtx.QueryRow(ctx, `
		SELECT id, user_id, professional_id, service_id, starts_at, ends_at, status, created_at, updated_at
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`, id).Scan(
		&apptID, &userID, &professionalID, &serviceID,
		&startsAt, &endsAt, &rawStatus, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock appointment", err)
	}

	status, err := appointment.ParseStatus(rawStatus)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid appointment status in store", err)
	}
	return appointment.Reconstruct(apptID, userID, professionalID, serviceID, startsAt, endsAt, status, createdAt, updatedAt), nil
}

func (r *AppointmentRepository) UpdateStatus(
	ctx context.Context, dbtx db.DBTX, id uuid.UUID, status appointment.Status,
) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE appointments
		SET status = $2, updated_at = now()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
