package readstore

import (
	"context"
	"errors"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

// FindViewByID loads the denormalized appointment view, expanded with
// user/professional/service summaries (read-after-write path).
func (r *AppointmentReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var v queries.AppointmentView
	err := r.db.QueryRow(ctx, `
		SELECT a.id, a.user_id, a.professional_id, a.service_id,
			a.starts_at, a.ends_at, a.status, a.created_at, a.updated_at,
			u.id, u.name, u.email,
			p.id, p.name,
			s.id, s.name, s.duration_minutes
		FROM appointments a
		JOIN users u ON u.id = a.user_id
		JOIN professionals p ON p.id = a.professional_id
		JOIN services s ON s.id = a.service_id
		WHERE a.id = $1
	`, id).Scan(
		&v.ID, &v.UserID, &v.ProfessionalID, &v.ServiceID,
		&v.StartsAt, &v.EndsAt, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		&v.User.ID, &v.User.Name, &v.User.Email,
		&v.Professional.ID, &v.Professional.Name,
		&v.Service.ID, &v.Service.Name, &v.Service.DurationMinutes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment view", err)
	}
	return &v, nil
}
