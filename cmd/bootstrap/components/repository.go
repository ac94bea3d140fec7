package components

import (
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		fx.Annotate(
			readstore.NewCommandReadStore,
			fx.As(new(commands.CommandReads)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(commands.AppointmentViewReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
