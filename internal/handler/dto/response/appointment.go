package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID             uuid.UUID                   `json:"id"`
	UserID         uuid.UUID                   `json:"userId"`
	ProfessionalID uuid.UUID                   `json:"professionalId"`
	ServiceID      uuid.UUID                   `json:"serviceId"`
	StartsAt       time.Time                   `json:"startsAt"`
	EndsAt         time.Time                   `json:"endsAt"`
	Status         string                      `json:"status"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
	User           UserSummaryResponse         `json:"user"`
	Professional   ProfessionalSummaryResponse `json:"professional"`
	Service        ServiceSummaryResponse      `json:"service"`
}

type UserSummaryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ServiceSummaryResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int32     `json:"durationMinutes"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		ProfessionalID: v.ProfessionalID,
		ServiceID:      v.ServiceID,
		StartsAt:       v.StartsAt,
		EndsAt:         v.EndsAt,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
		User:           UserSummaryResponse{ID: v.User.ID, Name: v.User.Name, Email: v.User.Email},
		Professional:   ProfessionalSummaryResponse{ID: v.Professional.ID, Name: v.Professional.Name},
		Service: ServiceSummaryResponse{
			ID:              v.Service.ID,
			Name:            v.Service.Name,
			DurationMinutes: v.Service.DurationMinutes,
		},
	}
}
