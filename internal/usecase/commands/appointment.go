package commands

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrProfessionalNotFound    = errs.New("professional not found")
	ErrServiceNotFound         = errs.New("service not found")
	ErrServiceNotOffered       = errs.New("service not offered by professional")
	ErrAppointmentConflict     = errs.New("appointment time slot conflict")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrAlreadyCancelled        = errs.New("appointment already cancelled")
	ErrNotCancellable          = errs.New("appointment cannot be cancelled")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateAppointmentParams struct {
	UserID         uuid.UUID
	ProfessionalID uuid.UUID
	ServiceID      uuid.UUID
	StartsAt       time.Time
}

// Snapshots for precondition reads (validated before any transaction begins).

type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ProfessionalSnapshot struct {
	ID   uuid.UUID
	Name string
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int32
	Active          bool
	// Offered reports whether the requested professional offers this service.
	Offered bool
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ProfessionalByID(ctx context.Context, id uuid.UUID) (*ProfessionalSnapshot, error)
	// ServiceForProfessional loads the service together with whether the
	// professional offers it; KindNotFound when the service does not exist.
	ServiceForProfessional(ctx context.Context, serviceID, professionalID uuid.UUID) (*ServiceSnapshot, error)
}

// AppointmentViewReader resolves the denormalized view after a commit
// (read-after-write).
type AppointmentViewReader interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
}

type AppointmentCommands interface {
	// CreateAppointment books a slot; the read-check-write sequence runs in a
	// serializable transaction so two overlapping requests can never both
	// commit. Conflict is terminal and never retried here.
	CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*queries.AppointmentView, error)
	// CancelAppointment is a one-way transition; cancelling twice fails.
	CancelAppointment(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)
}

type appointmentCommandsImpl struct {
	uow   shared.UnitOfWork
	reads CommandReads
	views AppointmentViewReader
	cache queries.AvailabilityCache
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	reads CommandReads,
	views AppointmentViewReader,
	cache queries.AvailabilityCache,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:   uow,
		reads: reads,
		views: views,
		cache: cache,
	}
}

func (c *appointmentCommandsImpl) CreateAppointment(ctx context.Context, params CreateAppointmentParams) (*queries.AppointmentView, error) {
	service, err := c.validatePreconditions(ctx, params)
	if err != nil {
		return nil, err
	}

	appt, err := appointment.NewAppointment(
		params.UserID,
		params.ProfessionalID,
		params.ServiceID,
		params.StartsAt,
		time.Duration(service.DurationMinutes)*time.Minute,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		busy, err := tx.Appointments().OccupyingIntervals(
			ctx, tx.DB(), params.ProfessionalID, appt.StartsAt(), appt.EndsAt())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if appt.Interval().OverlapsAny(busy) {
			return ErrAppointmentConflict
		}

		if _, err := tx.Appointments().Create(ctx, tx.DB(), appt); err != nil {
			// The exclusion constraint catches what the in-transaction
			// re-check cannot see yet; both map to the same outcome.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrAppointmentConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, params.ProfessionalID, appt.StartsAt().UTC().Format(time.DateOnly))

	view, err := c.views.FindViewByID(ctx, appt.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *appointmentCommandsImpl) CancelAppointment(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var professionalID uuid.UUID
	var startsAt time.Time

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := appt.Cancel(); err != nil {
			if errors.Is(err, appointment.ErrNotCancellable) {
				return ErrNotCancellable
			}
			return ErrAlreadyCancelled
		}

		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), id, appt.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		professionalID = appt.ProfessionalID()
		startsAt = appt.StartsAt()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, professionalID, startsAt.UTC().Format(time.DateOnly))

	view, err := c.views.FindViewByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *appointmentCommandsImpl) validatePreconditions(ctx context.Context, params CreateAppointmentParams) (*ServiceSnapshot, error) {
	if _, err := c.reads.UserByID(ctx, params.UserID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if _, err := c.reads.ProfessionalByID(ctx, params.ProfessionalID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	service, err := c.reads.ServiceForProfessional(ctx, params.ServiceID, params.ProfessionalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !service.Offered || !service.Active {
		return nil, ErrServiceNotOffered
	}

	return service, nil
}
