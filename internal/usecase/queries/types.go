package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int32     `json:"duration_minutes"`
	PriceCents      int32     `json:"price_cents"`
}

type ProfessionalView struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone,omitempty"`
	Bio       *string       `json:"bio,omitempty"`
	AvatarURL *string       `json:"avatar_url,omitempty"`
	Services  []ServiceView `json:"services"`
}

type ProfessionalSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ServiceSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int32     `json:"duration_minutes"`
}

type SlotView struct {
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Available bool      `json:"available"`
}

type AvailabilityView struct {
	Professional ProfessionalSummary `json:"professional"`
	Date         string              `json:"date"`
	Slots        []SlotView          `json:"slots"`
}

// AppointmentView is the denormalized appointment shape returned by the API:
// the persisted row expanded with user/professional/service summaries.
type AppointmentView struct {
	ID             uuid.UUID           `json:"id"`
	UserID         uuid.UUID           `json:"user_id"`
	ProfessionalID uuid.UUID           `json:"professional_id"`
	ServiceID      uuid.UUID           `json:"service_id"`
	StartsAt       time.Time           `json:"starts_at"`
	EndsAt         time.Time           `json:"ends_at"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	User           UserSummary         `json:"user"`
	Professional   ProfessionalSummary `json:"professional"`
	Service        ServiceSummary      `json:"service"`
}
