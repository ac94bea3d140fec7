package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int32     `json:"durationMinutes"`
	PriceCents      int32     `json:"priceCents"`
}

type ProfessionalResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     *string           `json:"phone,omitempty"`
	Bio       *string           `json:"bio,omitempty"`
	AvatarURL *string           `json:"avatarUrl,omitempty"`
	Services  []ServiceResponse `json:"services"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, len(vs))
	for i, v := range vs {
		out[i] = FromServiceView(v)
	}
	return out
}

func FromProfessionalView(v *queries.ProfessionalView) *ProfessionalResponse {
	var resp ProfessionalResponse
	_ = copier.Copy(&resp, v)
	if resp.Services == nil {
		resp.Services = []ServiceResponse{}
	}
	return &resp
}

func FromProfessionalViews(vs []*queries.ProfessionalView) []*ProfessionalResponse {
	out := make([]*ProfessionalResponse, len(vs))
	for i, v := range vs {
		out[i] = FromProfessionalView(v)
	}
	return out
}
