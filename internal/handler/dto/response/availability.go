package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Professional ProfessionalSummaryResponse `json:"professional"`
	Date         string                      `json:"date"`
	Slots        []SlotResponse              `json:"slots"`
}

type ProfessionalSummaryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SlotResponse struct {
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Available bool      `json:"available"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{StartsAt: s.StartsAt, EndsAt: s.EndsAt, Available: s.Available}
	}
	return &AvailabilityResponse{
		Professional: ProfessionalSummaryResponse{ID: v.Professional.ID, Name: v.Professional.Name},
		Date:         v.Date,
		Slots:        slots,
	}
}
