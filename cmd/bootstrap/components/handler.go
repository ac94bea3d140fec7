package components

import (
	"salon-booking/internal/handler"
	"salon-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewAvailabilityHandler,
		api.NewAppointmentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
