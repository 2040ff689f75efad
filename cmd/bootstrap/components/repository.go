package components

import (
	"travel-booking/internal/infra/readstore"
	"travel-booking/internal/infra/repository"
	"travel-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewCapacityRepository,
			fx.As(new(usecase.CapacityRepository)),
		),
		fx.Annotate(
			repository.NewHoldRepository,
			fx.As(new(usecase.HoldRepository)),
		),
		fx.Annotate(
			repository.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(usecase.PricingReadStore)),
		),
	),
)
