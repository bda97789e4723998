package components

import (
	"go.uber.org/fx"

	"member-rewards/internal/handler"
	"member-rewards/internal/handler/api"
	"member-rewards/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMemberHandler,
		api.NewPointsHandler,
		api.NewCouponsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
