package components

import (
	"github.com/ferdinandetchu/real-estate-cameroon/internal/handler"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/handler/api"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPropertyHandler,
		api.NewBookingHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
