package appointment

import "salon-booking/internal/pkg/errs"

var ErrInvalidStatus = errs.New("invalid appointment status")

// Status is the appointment lifecycle state. Only Pending and Confirmed
// occupy the professional's timeline for conflict purposes.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Occupies reports whether an appointment with this status blocks other
// bookings over its interval.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) String() string {
	return string(s)
}
