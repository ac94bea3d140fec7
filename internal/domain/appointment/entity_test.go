//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingStart = time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC)

func newTestAppointment(t *testing.T, duration time.Duration) *appointment.Appointment {
	t.Helper()
	appt, err := appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), bookingStart, duration)
	require.NoError(t, err)
	return appt
}

func TestNewAppointment(t *testing.T) {
	t.Run("derives end time from service duration", func(t *testing.T) {
		appt := newTestAppointment(t, 45*time.Minute)

		assert.Equal(t, bookingStart, appt.StartsAt())
		assert.Equal(t, bookingStart.Add(45*time.Minute), appt.EndsAt())
		assert.Equal(t, appointment.StatusPending, appt.Status())
		assert.NotEqual(t, uuid.Nil, appt.ID())
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), bookingStart, 0)
		assert.ErrorIs(t, err, appointment.ErrInvalidDuration)

		_, err = appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), bookingStart, -time.Minute)
		assert.ErrorIs(t, err, appointment.ErrInvalidDuration)
	})

	t.Run("rejects zero start time", func(t *testing.T) {
		_, err := appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(), time.Time{}, 30*time.Minute)
		assert.ErrorIs(t, err, appointment.ErrZeroStartTime)
	})
}

func TestAppointment_Cancel(t *testing.T) {
	appt := newTestAppointment(t, 30*time.Minute)

	require.NoError(t, appt.Cancel())
	assert.Equal(t, appointment.StatusCancelled, appt.Status())
	assert.False(t, appt.Occupies(), "cancelled appointment frees its interval")

	err := appt.Cancel()
	assert.ErrorIs(t, err, appointment.ErrAlreadyCancelled, "double cancel must fail")
}

func TestAppointment_CancelCompletedIsTerminal(t *testing.T) {
	now := time.Now().UTC()
	appt := appointment.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		bookingStart, bookingStart.Add(30*time.Minute),
		appointment.StatusCompleted,
		now, now,
	)

	err := appt.Cancel()
	assert.ErrorIs(t, err, appointment.ErrNotCancellable)
	assert.Equal(t, appointment.StatusCompleted, appt.Status(), "a completed appointment must keep its status")
}

func TestStatus_Occupies(t *testing.T) {
	assert.True(t, appointment.StatusPending.Occupies())
	assert.True(t, appointment.StatusConfirmed.Occupies())
	assert.False(t, appointment.StatusCancelled.Occupies())
	assert.False(t, appointment.StatusCompleted.Occupies())
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		status, err := appointment.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	_, err := appointment.ParseStatus("pending")
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
	_, err = appointment.ParseStatus("")
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)
}

func TestAppointment_Interval(t *testing.T) {
	appt := newTestAppointment(t, 30*time.Minute)
	other := newTestAppointment(t, 30*time.Minute)

	assert.True(t, appt.Interval().Overlaps(other.Interval()))

	later, err := appointment.NewAppointment(uuid.New(), uuid.New(), uuid.New(),
		bookingStart.Add(30*time.Minute), 30*time.Minute)
	require.NoError(t, err)
	assert.False(t, appt.Interval().Overlaps(later.Interval()), "back-to-back appointments do not conflict")
}
