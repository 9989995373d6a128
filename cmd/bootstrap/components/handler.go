package components

import (
	"go.uber.org/fx"

	"dropdeck/internal/handler"
	"dropdeck/internal/handler/api"
	"dropdeck/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDropHandler,
		api.NewSettingsHandler,
		api.NewCatalogHandler,
		api.NewEventHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
