package queries

import (
	"context"

	"salon-booking/internal/pkg/errs"
)

// CatalogReadStore serves the public browse surface: active services and
// professionals with the active services they offer.
type CatalogReadStore interface {
	ListActiveServices(ctx context.Context) ([]*ServiceView, error)
	ListProfessionals(ctx context.Context) ([]*ProfessionalView, error)
}

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]*ServiceView, error)
	ListProfessionals(ctx context.Context) ([]*ProfessionalView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	services, err := q.store.ListActiveServices(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list services")
	}
	return services, nil
}

func (q *catalogQueriesImpl) ListProfessionals(ctx context.Context) ([]*ProfessionalView, error) {
	professionals, err := q.store.ListProfessionals(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list professionals")
	}
	return professionals, nil
}
