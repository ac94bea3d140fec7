//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/dbtest"
	ht "salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/appointments"
	availabilityURL = "/professionals/%s/availability?date=%s"
	cancelURL       = "/appointments/%s/cancel"
)

// A Monday well in the future so working-hours seed data (Mon-Sat 09:00-18:00)
// applies and the slot never collides with "today".
var bookingDay = time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func haircutRequest(startsAt time.Time) request.CreateAppointmentRequest {
	return request.CreateAppointmentRequest{
		UserID:         dbtest.UserSofia,
		ProfessionalID: dbtest.ProfessionalMaria,
		ServiceID:      dbtest.ServiceHaircut,
		StartsAtISO:    startsAt.Format(time.RFC3339),
	}
}

func (s *BookingSuite) createAppointment(t *testing.T, req request.CreateAppointmentRequest) *httptest.ResponseRecorder {
	t.Helper()
	return ht.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, req)
}

func (s *BookingSuite) fetchAvailability(t *testing.T, professionalID uuid.UUID, date string) response.AvailabilityResponse {
	t.Helper()

	url := fmt.Sprintf(availabilityURL, professionalID.String(), date)
	w := ht.PerformRequest(t, s.Router, http.MethodGet, url, nil)

	var resp response.AvailabilityResponse
	ht.AssertSuccessEnvelope(t, w, http.StatusOK, &resp)
	return resp
}

// Blocked slots are removed from the sequence entirely, so presence of a
// start time is the availability signal.
func hasSlot(slots []response.SlotResponse, startsAt time.Time) bool {
	for _, slot := range slots {
		if slot.StartsAt.Equal(startsAt) {
			return true
		}
	}
	return false
}

// =============================================================================
// TestCreateAppointment - Booking API tests
// =============================================================================

func (s *BookingSuite) TestCreateAppointment() {
	s.Run("Normal case: Appointment created with service-derived end time", func() {
		t := s.T()

		startsAt := bookingDay.Add(10 * time.Hour)
		w := s.createAppointment(t, haircutRequest(startsAt))

		var created response.AppointmentResponse
		ht.AssertSuccessEnvelope(t, w, http.StatusCreated, &created)

		require.Equal(t, "PENDING", created.Status)
		require.True(t, startsAt.Equal(created.StartsAt))
		require.True(t, startsAt.Add(45*time.Minute).Equal(created.EndsAt), "Haircut is 45 minutes")
		require.Equal(t, "Maria Silva", created.Professional.Name)
		require.Equal(t, "sofia@example.com", created.User.Email)
	})

	s.Run("Error case: Overlapping appointment is rejected with 409", func() {
		t := s.T()

		startsAt := bookingDay.Add(10 * time.Hour)
		w1 := s.createAppointment(t, haircutRequest(startsAt))
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// 10:30 overlaps the 10:00-10:45 haircut
		w2 := s.createAppointment(t, haircutRequest(startsAt.Add(30*time.Minute)))
		ht.AssertErrorEnvelope(t, w2, http.StatusConflict, "Time slot is no longer available")
	})

	s.Run("Normal case: Back-to-back appointments do not conflict", func() {
		t := s.T()

		startsAt := bookingDay.Add(10 * time.Hour)
		w1 := s.createAppointment(t, haircutRequest(startsAt))
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// Starts exactly when the first one ends
		w2 := s.createAppointment(t, haircutRequest(startsAt.Add(45*time.Minute)))
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("Error case: Service not offered by professional returns 404", func() {
		t := s.T()

		req := haircutRequest(bookingDay.Add(10 * time.Hour))
		req.ServiceID = dbtest.ServiceMassage // only João offers massage

		w := s.createAppointment(t, req)
		ht.AssertErrorEnvelope(t, w, http.StatusNotFound, "Service is not offered by this professional")
	})

	s.Run("Error case: Unknown user returns 404", func() {
		t := s.T()

		req := haircutRequest(bookingDay.Add(10 * time.Hour))
		req.UserID = uuid.New()

		w := s.createAppointment(t, req)
		ht.AssertErrorEnvelope(t, w, http.StatusNotFound, "User not found")
	})

	s.Run("Error case: Malformed body returns validation issues", func() {
		t := s.T()

		w := ht.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, map[string]any{
			"userId":         dbtest.UserSofia.String(),
			"professionalId": dbtest.ProfessionalMaria.String(),
			"serviceId":      dbtest.ServiceHaircut.String(),
			"startsAtISO":    "next tuesday",
		})
		ht.AssertValidationError(t, w)
	})
}

// =============================================================================
// TestConcurrentBooking - Double-booking protection under concurrency
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Exactly one of N parallel attempts for the same slot wins", func() {
		t := s.T()

		const attempts = 10
		startsAt := bookingDay.Add(14 * time.Hour)
		req := haircutRequest(startsAt)

		var wg sync.WaitGroup
		codes := make([]int, attempts)
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := s.createAppointment(t, req)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var created, conflicted, other int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				other++
			}
		}

		require.Equal(t, 1, created, "exactly one attempt must win, got codes %v", codes)
		require.Equal(t, attempts-1, conflicted, "all losers must get 409, got codes %v", codes)
		require.Zero(t, other, "unexpected status codes %v", codes)
	})
}

// =============================================================================
// TestCancelAppointment - Cancellation API tests
// =============================================================================

func (s *BookingSuite) TestCancelAppointment() {
	s.Run("Normal case: Cancelled appointment frees its slot for rebooking", func() {
		t := s.T()

		startsAt := bookingDay.Add(11 * time.Hour)
		w := s.createAppointment(t, haircutRequest(startsAt))

		var created response.AppointmentResponse
		ht.AssertSuccessEnvelope(t, w, http.StatusCreated, &created)

		cw := ht.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(cancelURL, created.ID), nil)

		var cancelled response.AppointmentResponse
		ht.AssertSuccessEnvelope(t, cw, http.StatusOK, &cancelled)
		require.Equal(t, "CANCELLED", cancelled.Status)
		require.Equal(t, created.ID, cancelled.ID)

		// Same slot can be booked again
		rw := s.createAppointment(t, haircutRequest(startsAt))
		require.Equal(t, http.StatusCreated, rw.Code, rw.Body.String())
	})

	s.Run("Error case: Cancelling twice returns 400", func() {
		t := s.T()

		w := s.createAppointment(t, haircutRequest(bookingDay.Add(11*time.Hour)))

		var created response.AppointmentResponse
		ht.AssertSuccessEnvelope(t, w, http.StatusCreated, &created)

		url := fmt.Sprintf(cancelURL, created.ID)
		first := ht.PerformRequest(t, s.Router, http.MethodPatch, url, nil)
		require.Equal(t, http.StatusOK, first.Code, first.Body.String())

		second := ht.PerformRequest(t, s.Router, http.MethodPatch, url, nil)
		ht.AssertErrorEnvelope(t, second, http.StatusBadRequest, "Appointment is already cancelled")
	})

	s.Run("Error case: Cancelling unknown appointment returns 404", func() {
		t := s.T()

		w := ht.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(cancelURL, uuid.New()), nil)
		ht.AssertErrorEnvelope(t, w, http.StatusNotFound, "Appointment not found")
	})
}

// =============================================================================
// TestAvailabilityReflectsBookings - Slot grid follows appointment lifecycle
// =============================================================================

func (s *BookingSuite) TestAvailabilityReflectsBookings() {
	s.Run("Booked slot becomes unavailable and returns after cancellation", func() {
		t := s.T()

		date := bookingDay.Format("2006-01-02")
		startsAt := bookingDay.Add(10 * time.Hour)

		before := s.fetchAvailability(t, dbtest.ProfessionalMaria, date)
		require.Equal(t, "Maria Silva", before.Professional.Name)
		require.NotEmpty(t, before.Slots)
		require.True(t, hasSlot(before.Slots, startsAt))

		w := s.createAppointment(t, haircutRequest(startsAt))
		var created response.AppointmentResponse
		ht.AssertSuccessEnvelope(t, w, http.StatusCreated, &created)

		// The 45-minute haircut removes the 10:00, 10:15 and 10:30 grid slots
		during := s.fetchAvailability(t, dbtest.ProfessionalMaria, date)
		for _, offset := range []time.Duration{0, 15 * time.Minute, 30 * time.Minute} {
			require.False(t, hasSlot(during.Slots, startsAt.Add(offset)),
				"slot %s should be removed", startsAt.Add(offset))
		}
		require.True(t, hasSlot(during.Slots, startsAt.Add(45*time.Minute)))

		cw := ht.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(cancelURL, created.ID), nil)
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		after := s.fetchAvailability(t, dbtest.ProfessionalMaria, date)
		require.True(t, hasSlot(after.Slots, startsAt), "cancellation should free the slot")
	})

	s.Run("Breaks are carved out of the availability grid", func() {
		t := s.T()

		date := bookingDay.Format("2006-01-02")
		dbtest.CreateTestBreak(t, s.DB, dbtest.ProfessionalMaria,
			bookingDay.Add(12*time.Hour), bookingDay.Add(13*time.Hour), "Lunch")

		resp := s.fetchAvailability(t, dbtest.ProfessionalMaria, date)
		require.False(t, hasSlot(resp.Slots, bookingDay.Add(12*time.Hour)))
		require.False(t, hasSlot(resp.Slots, bookingDay.Add(12*time.Hour+45*time.Minute)))
		require.True(t, hasSlot(resp.Slots, bookingDay.Add(13*time.Hour)))
	})

	s.Run("Day off returns an empty slot list", func() {
		t := s.T()

		// 2027-03-07 is a Sunday; the seed has no Sunday working hours
		resp := s.fetchAvailability(t, dbtest.ProfessionalMaria, "2027-03-07")
		require.Empty(t, resp.Slots)
	})
}
