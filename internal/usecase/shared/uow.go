package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork is the transactional-store port the booking core runs against.
// The concrete adapter must provide serializable isolation for
// WithinSerializable; the double-booking guarantee depends on it (backed
// unconditionally by the store's range-overlap exclusion constraint).
type UnitOfWork interface {
	// WithinSerializable: SERIALIZABLE transaction for the booking
	// read-check-write sequence; retries serialization failures.
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Within: default-isolation transaction for single-row state transitions.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	DB() db.DBTX
}

type AppointmentRepository interface {
	// OccupyingIntervals reads all PENDING/CONFIRMED intervals for the
	// professional that overlap [from, to), inside the current transaction.
	OccupyingIntervals(ctx context.Context, dbtx db.DBTX, professionalID uuid.UUID, from, to time.Time) ([]schedule.Interval, error)
	// Create inserts a new appointment row; KindConflict when the store's
	// exclusion constraint rejects an overlapping occupying interval.
	Create(ctx context.Context, dbtx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	// FindForUpdate loads and row-locks an appointment; KindNotFound when absent.
	FindForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*appointment.Appointment, error)
	// UpdateStatus persists a status transition and refreshes updated_at.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status appointment.Status) error
}
