package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewHoldHandler,
		api.NewCheckoutHandler,
		api.NewCapacityHandler,
	),
	fx.Invoke(handler.NewRouter),
)
