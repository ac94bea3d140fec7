//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"
	sharedmock "salon-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commandMocks struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	repo  *sharedmock.MockAppointmentRepository
	reads *commandsmock.MockCommandReads
	views *commandsmock.MockAppointmentViewReader
	cache *queriesmock.MockAvailabilityCache
}

func newAppointmentCommands(t *testing.T) (commands.AppointmentCommands, commandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := commandMocks{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		repo:  sharedmock.NewMockAppointmentRepository(ctrl),
		reads: commandsmock.NewMockCommandReads(ctrl),
		views: commandsmock.NewMockAppointmentViewReader(ctrl),
		cache: queriesmock.NewMockAvailabilityCache(ctrl),
	}
	m.tx.EXPECT().Appointments().Return(m.repo).AnyTimes()
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	return commands.NewAppointmentCommands(m.uow, m.reads, m.views, m.cache), m
}

// expectSerializable runs the transaction closure against the mock Tx,
// standing in for a real serializable transaction.
func (m commandMocks) expectSerializable() *gomock.Call {
	return m.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func (m commandMocks) expectWithin() *gomock.Call {
	return m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func validParams() commands.CreateAppointmentParams {
	return commands.CreateAppointmentParams{
		UserID:         uuid.New(),
		ProfessionalID: uuid.New(),
		ServiceID:      uuid.New(),
		StartsAt:       time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC),
	}
}

func expectPreconditionsOK(m commandMocks, params commands.CreateAppointmentParams, durationMinutes int32) {
	m.reads.EXPECT().UserByID(gomock.Any(), params.UserID).
		Return(&commands.UserSnapshot{ID: params.UserID, Name: "Sofia Oliveira", Email: "sofia@example.com"}, nil)
	m.reads.EXPECT().ProfessionalByID(gomock.Any(), params.ProfessionalID).
		Return(&commands.ProfessionalSnapshot{ID: params.ProfessionalID, Name: "Maria Silva"}, nil)
	m.reads.EXPECT().ServiceForProfessional(gomock.Any(), params.ServiceID, params.ProfessionalID).
		Return(&commands.ServiceSnapshot{
			ID:              params.ServiceID,
			Name:            "Haircut & Styling",
			DurationMinutes: durationMinutes,
			Active:          true,
			Offered:         true,
		}, nil)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, errors.New("no rows"), infra.KindNotFound)
}

func TestCreateAppointment_Success(t *testing.T) {
	c, m := newAppointmentCommands(t)
	params := validParams()

	expectPreconditionsOK(m, params, 45)
	m.expectSerializable()

	var createdID uuid.UUID
	m.repo.EXPECT().OccupyingIntervals(gomock.Any(), gomock.Any(), params.ProfessionalID,
		params.StartsAt, params.StartsAt.Add(45*time.Minute)).
		Return(nil, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, appt *appointment.Appointment) (uuid.UUID, error) {
			assert.Equal(t, appointment.StatusPending, appt.Status())
			assert.Equal(t, params.StartsAt.Add(45*time.Minute), appt.EndsAt())
			createdID = appt.ID()
			return appt.ID(), nil
		})
	m.cache.EXPECT().Invalidate(gomock.Any(), params.ProfessionalID, "2024-08-05")
	m.views.EXPECT().FindViewByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
			assert.Equal(t, createdID, id)
			return &queries.AppointmentView{ID: id, Status: "PENDING"}, nil
		})

	view, err := c.CreateAppointment(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", view.Status)
}

func TestCreateAppointment_PreconditionOrder(t *testing.T) {
	t.Run("user not found", func(t *testing.T) {
		c, m := newAppointmentCommands(t)
		params := validParams()

		m.reads.EXPECT().UserByID(gomock.Any(), params.UserID).Return(nil, notFound("user"))

		_, err := c.CreateAppointment(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("professional not found", func(t *testing.T) {
		c, m := newAppointmentCommands(t)
		params := validParams()

		m.reads.EXPECT().UserByID(gomock.Any(), params.UserID).
			Return(&commands.UserSnapshot{ID: params.UserID}, nil)
		m.reads.EXPECT().ProfessionalByID(gomock.Any(), params.ProfessionalID).
			Return(nil, notFound("professional"))

		_, err := c.CreateAppointment(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrProfessionalNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		c, m := newAppointmentCommands(t)
		params := validParams()

		m.reads.EXPECT().UserByID(gomock.Any(), params.UserID).
			Return(&commands.UserSnapshot{ID: params.UserID}, nil)
		m.reads.EXPECT().ProfessionalByID(gomock.Any(), params.ProfessionalID).
			Return(&commands.ProfessionalSnapshot{ID: params.ProfessionalID}, nil)
		m.reads.EXPECT().ServiceForProfessional(gomock.Any(), params.ServiceID, params.ProfessionalID).
			Return(nil, notFound("service"))

		_, err := c.CreateAppointment(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("service not offered", func(t *testing.T) {
		c, m := newAppointmentCommands(t)
		params := validParams()

		m.reads.EXPECT().UserByID(gomock.Any(), params.UserID).
			Return(&commands.UserSnapshot{ID: params.UserID}, nil)
		m.reads.EXPECT().ProfessionalByID(gomock.Any(), params.ProfessionalID).
			Return(&commands.ProfessionalSnapshot{ID: params.ProfessionalID}, nil)
		m.reads.EXPECT().ServiceForProfessional(gomock.Any(), params.ServiceID, params.ProfessionalID).
			Return(&commands.ServiceSnapshot{ID: params.ServiceID, DurationMinutes: 45, Active: true, Offered: false}, nil)

		_, err := c.CreateAppointment(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrServiceNotOffered)
	})

	t.Run("inactive service treated as not offered", func(t *testing.T) {
		c, m := newAppointmentCommands(t)
		params := validParams()

		m.reads.EXPECT().UserByID(gomock.Any(), params.UserID).
			Return(&commands.UserSnapshot{ID: params.UserID}, nil)
		m.reads.EXPECT().ProfessionalByID(gomock.Any(), params.ProfessionalID).
			Return(&commands.ProfessionalSnapshot{ID: params.ProfessionalID}, nil)
		m.reads.EXPECT().ServiceForProfessional(gomock.Any(), params.ServiceID, params.ProfessionalID).
			Return(&commands.ServiceSnapshot{ID: params.ServiceID, DurationMinutes: 45, Active: false, Offered: true}, nil)

		_, err := c.CreateAppointment(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrServiceNotOffered)
	})
}

func TestCreateAppointment_OverlapDetectedInTransaction(t *testing.T) {
	c, m := newAppointmentCommands(t)
	params := validParams()

	expectPreconditionsOK(m, params, 45)
	m.expectSerializable()

	// An occupying appointment covers part of the candidate interval.
	busy := []schedule.Interval{
		schedule.NewInterval(params.StartsAt.Add(30*time.Minute), params.StartsAt.Add(90*time.Minute)),
	}
	m.repo.EXPECT().OccupyingIntervals(gomock.Any(), gomock.Any(), params.ProfessionalID,
		params.StartsAt, params.StartsAt.Add(45*time.Minute)).
		Return(busy, nil)

	_, err := c.CreateAppointment(context.Background(), params)
	assert.ErrorIs(t, err, commands.ErrAppointmentConflict)
}

func TestCreateAppointment_ExclusionConstraintMapsToConflict(t *testing.T) {
	c, m := newAppointmentCommands(t)
	params := validParams()

	expectPreconditionsOK(m, params, 45)
	m.expectSerializable()

	m.repo.EXPECT().OccupyingIntervals(gomock.Any(), gomock.Any(), params.ProfessionalID,
		gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("overlap", errors.New("23P01"), infra.KindConflict))

	_, err := c.CreateAppointment(context.Background(), params)
	assert.ErrorIs(t, err, commands.ErrAppointmentConflict)
}

func TestCreateAppointment_BackToBackAllowed(t *testing.T) {
	c, m := newAppointmentCommands(t)
	params := validParams()

	expectPreconditionsOK(m, params, 45)
	m.expectSerializable()

	// Existing appointment ends exactly when the candidate starts.
	busy := []schedule.Interval{
		schedule.NewInterval(params.StartsAt.Add(-time.Hour), params.StartsAt),
	}
	m.repo.EXPECT().OccupyingIntervals(gomock.Any(), gomock.Any(), params.ProfessionalID,
		gomock.Any(), gomock.Any()).
		Return(busy, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ any, appt *appointment.Appointment) (uuid.UUID, error) {
			return appt.ID(), nil
		})
	m.cache.EXPECT().Invalidate(gomock.Any(), params.ProfessionalID, "2024-08-05")
	m.views.EXPECT().FindViewByID(gomock.Any(), gomock.Any()).
		Return(&queries.AppointmentView{Status: "PENDING"}, nil)

	_, err := c.CreateAppointment(context.Background(), params)
	assert.NoError(t, err)
}

func TestCancelAppointment_Success(t *testing.T) {
	c, m := newAppointmentCommands(t)

	profID := uuid.New()
	startsAt := time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC)
	apptID := uuid.New()
	existing := appointment.Reconstruct(
		apptID, uuid.New(), profID, uuid.New(),
		startsAt, startsAt.Add(45*time.Minute),
		appointment.StatusPending,
		startsAt.Add(-time.Hour), startsAt.Add(-time.Hour),
	)

	m.expectWithin()
	m.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).Return(existing, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), apptID, appointment.StatusCancelled).Return(nil)
	m.cache.EXPECT().Invalidate(gomock.Any(), profID, "2024-08-05")
	m.views.EXPECT().FindViewByID(gomock.Any(), apptID).
		Return(&queries.AppointmentView{ID: apptID, Status: "CANCELLED"}, nil)

	view, err := c.CancelAppointment(context.Background(), apptID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", view.Status)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	c, m := newAppointmentCommands(t)
	apptID := uuid.New()

	m.expectWithin()
	m.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).Return(nil, notFound("appointment"))

	_, err := c.CancelAppointment(context.Background(), apptID)
	assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
}

func TestCancelAppointment_AlreadyCancelled(t *testing.T) {
	c, m := newAppointmentCommands(t)

	apptID := uuid.New()
	startsAt := time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC)
	cancelled := appointment.Reconstruct(
		apptID, uuid.New(), uuid.New(), uuid.New(),
		startsAt, startsAt.Add(45*time.Minute),
		appointment.StatusCancelled,
		startsAt.Add(-time.Hour), startsAt.Add(-time.Minute),
	)

	m.expectWithin()
	m.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).Return(cancelled, nil)

	_, err := c.CancelAppointment(context.Background(), apptID)
	assert.ErrorIs(t, err, commands.ErrAlreadyCancelled)
}

func TestCancelAppointment_CompletedIsTerminal(t *testing.T) {
	c, m := newAppointmentCommands(t)

	apptID := uuid.New()
	startsAt := time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC)
	completed := appointment.Reconstruct(
		apptID, uuid.New(), uuid.New(), uuid.New(),
		startsAt, startsAt.Add(45*time.Minute),
		appointment.StatusCompleted,
		startsAt.Add(-time.Hour), startsAt.Add(time.Hour),
	)

	m.expectWithin()
	m.repo.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), apptID).Return(completed, nil)
	// No UpdateStatus call: the transition must never reach the store.

	_, err := c.CancelAppointment(context.Background(), apptID)
	assert.ErrorIs(t, err, commands.ErrNotCancellable)
}
