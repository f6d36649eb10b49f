package components

import (
	"periop-admin/internal/handler"
	"periop-admin/internal/handler/api"
	"periop-admin/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPromoCodeHandler,
		api.NewEntitlementHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
