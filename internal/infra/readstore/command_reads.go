package readstore

import (
	"context"
	"errors"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReadStore serves the Booking Transaction's precondition reads. These
// run before the serializable transaction; the transaction itself re-checks
// nothing but the timeline.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

func (r *CommandReadStore) UserByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var u commands.UserSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &u, nil
}

func (r *CommandReadStore) ProfessionalByID(ctx context.Context, id uuid.UUID) (*commands.ProfessionalSnapshot, error) {
	var p commands.ProfessionalSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, name
		FROM professionals
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("professional not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find professional", err)
	}
	return &p, nil
}

func (r *CommandReadStore) ServiceForProfessional(ctx context.Context, serviceID, professionalID uuid.UUID) (*commands.ServiceSnapshot, error) {
	var s commands.ServiceSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT s.id, s.name, s.duration_minutes, s.active,
			EXISTS (
				SELECT 1 FROM professional_services ps
				WHERE ps.service_id = s.id AND ps.professional_id = $2
			) AS offered
		FROM services s
		WHERE s.id = $1
	`, serviceID, professionalID).Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.Active, &s.Offered)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &s, nil
}
