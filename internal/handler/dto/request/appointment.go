package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	UserID         uuid.UUID `json:"userId" binding:"required"`
	ProfessionalID uuid.UUID `json:"professionalId" binding:"required"`
	ServiceID      uuid.UUID `json:"serviceId" binding:"required"`
	StartsAtISO    string    `json:"startsAtISO" binding:"required"`
}

// StartsAt parses the strict ISO-8601 start timestamp.
func (r CreateAppointmentRequest) StartsAt() (time.Time, error) {
	return time.Parse(time.RFC3339, r.StartsAtISO)
}
