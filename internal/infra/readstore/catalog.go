package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (r *CatalogReadStore) ListActiveServices(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, duration_minutes, price_cents
		FROM services
		WHERE active
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}
	defer rows.Close()

	var services []*queries.ServiceView
	for rows.Next() {
		var s queries.ServiceView
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, &s)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", rows.Err())
	}
	return services, nil
}

func (r *CatalogReadStore) ListProfessionals(ctx context.Context) ([]*queries.ProfessionalView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone, bio, avatar_url
		FROM professionals
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list professionals", err)
	}
	defer rows.Close()

	var professionals []*queries.ProfessionalView
	for rows.Next() {
		var p queries.ProfessionalView
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Bio, &p.AvatarURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan professional row", err)
		}
		p.Services = []queries.ServiceView{}
		professionals = append(professionals, &p)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to read professional rows", rows.Err())
	}

	if err := r.attachActiveServices(ctx, professionals); err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *CatalogReadStore) attachActiveServices(ctx context.Context, professionals []*queries.ProfessionalView) error {
	if len(professionals) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]*queries.ProfessionalView, len(professionals))
	ids := make([]uuid.UUID, len(professionals))
	for i, p := range professionals {
		index[p.ID] = p
		ids[i] = p.ID
	}

	rows, err := r.db.Query(ctx, `
		SELECT ps.professional_id, s.id, s.name, s.description, s.duration_minutes, s.price_cents
		FROM professional_services ps
		JOIN services s ON s.id = ps.service_id
		WHERE s.active AND ps.professional_id = ANY($1)
		ORDER BY s.name ASC
	`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list offered services", err)
	}
	defer rows.Close()

	for rows.Next() {
		var professionalID uuid.UUID
		var s queries.ServiceView
		if err := rows.Scan(&professionalID, &s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.PriceCents); err != nil {
			return infra.WrapRepoErr("failed to scan offered service row", err)
		}
		if p, ok := index[professionalID]; ok {
			p.Services = append(p.Services, s)
		}
	}
	if rows.Err() != nil {
		return infra.WrapRepoErr("failed to read offered service rows", rows.Err())
	}
	return nil
}
