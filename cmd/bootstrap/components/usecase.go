package components

import (
	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		pricing.NewEngine,
		func(cfg config.Config) config.LedgerConfig { return cfg.Ledger },
		func(cfg config.Config) config.HoldConfig { return cfg.Holds },
		func(cfg config.Config) config.JanitorConfig { return cfg.Janitor },
		usecase.NewCapacityLedger,
		usecase.NewReservationManager,
		usecase.NewQuoteUseCase,
		usecase.NewCheckoutUseCase,
		usecase.NewJanitor,
	),
)
