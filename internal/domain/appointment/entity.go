package appointment

import (
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration  = errs.New("service duration must be positive")
	ErrZeroStartTime    = errs.New("appointment start time is required")
	ErrAlreadyCancelled = errs.New("appointment is already cancelled")
	ErrNotCancellable   = errs.New("appointment is in a terminal state")
)

// Appointment is a booked service occurrence on a professional's timeline,
// occupying the half-open interval [StartsAt, EndsAt).
type Appointment struct {
	id             uuid.UUID
	userID         uuid.UUID
	professionalID uuid.UUID
	serviceID      uuid.UUID
	startsAt       time.Time
	endsAt         time.Time
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAppointment builds a fresh PENDING appointment. The end time is derived
// from the service duration, never taken from the caller.
func NewAppointment(
	userID, professionalID, serviceID uuid.UUID,
	startsAt time.Time,
	serviceDuration time.Duration,
) (*Appointment, error) {
	if serviceDuration <= 0 {
		return nil, ErrInvalidDuration
	}
	if startsAt.IsZero() {
		return nil, ErrZeroStartTime
	}

	return &Appointment{
		id:             uuid.New(),
		userID:         userID,
		professionalID: professionalID,
		serviceID:      serviceID,
		startsAt:       startsAt.UTC(),
		endsAt:         startsAt.UTC().Add(serviceDuration),
		status:         StatusPending,
	}, nil
}

// Reconstruct rebuilds an appointment from persisted state.
func Reconstruct(
	id, userID, professionalID, serviceID uuid.UUID,
	startsAt, endsAt time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:             id,
		userID:         userID,
		professionalID: professionalID,
		serviceID:      serviceID,
		startsAt:       startsAt,
		endsAt:         endsAt,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Cancel transitions the appointment to CANCELLED. Cancelling twice is an
// error, not a silent no-op, and COMPLETED is terminal.
func (a *Appointment) Cancel() error {
	switch a.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCompleted:
		return ErrNotCancellable
	}
	a.status = StatusCancelled
	return nil
}

// Interval returns the occupied [startsAt, endsAt) interval.
func (a *Appointment) Interval() schedule.Interval {
	return schedule.NewInterval(a.startsAt, a.endsAt)
}

func (a *Appointment) Occupies() bool {
	return a.status.Occupies()
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) UserID() uuid.UUID         { return a.userID }
func (a *Appointment) ProfessionalID() uuid.UUID { return a.professionalID }
func (a *Appointment) ServiceID() uuid.UUID      { return a.serviceID }
func (a *Appointment) StartsAt() time.Time       { return a.startsAt }
func (a *Appointment) EndsAt() time.Time         { return a.endsAt }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }
