package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/domain/product"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPricingConfigNotFound = errs.New("pricing configuration not found")
	ErrInvalidDiscountCode   = errs.New("invalid discount code")
	ErrQuoteValidation       = errs.New("invalid quote request")
)

// PricingReadStore loads the read-only pricing configuration for a scope.
// This core never writes pricing configuration.
type PricingReadStore interface {
	TourConfig(ctx context.Context, productID uuid.UUID, scopeID string) (*pricing.TourConfig, error)
	EventConfig(ctx context.Context, productID uuid.UUID, scopeID string) (*pricing.EventConfig, error)
	TransferConfig(ctx context.Context, productID uuid.UUID, scopeID string) (*pricing.TransferConfig, error)
}

// DiscountRepository reads discount codes and owns the usage counter. The
// counter moves only at order finalization, never at quote time.
type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*pricing.Discount, error)
	IncrementUsage(ctx context.Context, code string) error
}

type QuoteParams struct {
	Scope        capacity.Scope
	Currency     string
	BookedFor    time.Time
	ReturnAt     *time.Time
	TripType     pricing.TripType
	Quantity     int
	Participants map[pricing.AgeGroup]int
	Options      []pricing.OptionSelection
	DiscountCode *string
}

type QuoteUseCase interface {
	Quote(ctx context.Context, params QuoteParams) (*pricing.Breakdown, error)
}

type quoteUseCaseImpl struct {
	configs   PricingReadStore
	discounts DiscountRepository
	engine    *pricing.Engine
	clock     clock.Clock
	logger    *slog.Logger
}

func NewQuoteUseCase(
	configs PricingReadStore,
	discounts DiscountRepository,
	engine *pricing.Engine,
	clk clock.Clock,
	logger *slog.Logger,
) QuoteUseCase {
	return &quoteUseCaseImpl{
		configs:   configs,
		discounts: discounts,
		engine:    engine,
		clock:     clk,
		logger:    logger,
	}
}

func (u *quoteUseCaseImpl) Quote(ctx context.Context, params QuoteParams) (*pricing.Breakdown, error) {
	cfg, err := u.loadConfig(ctx, params.Scope)
	if err != nil {
		return nil, err
	}

	disc, err := u.loadDiscount(ctx, params.DiscountCode)
	if err != nil {
		return nil, err
	}

	req := pricing.Request{
		ProductType:  params.Scope.ProductType(),
		Currency:     params.Currency,
		QuotedAt:     u.clock.Now(),
		BookedFor:    params.BookedFor,
		ReturnAt:     params.ReturnAt,
		TripType:     params.TripType,
		Quantity:     params.Quantity,
		Participants: params.Participants,
		Options:      params.Options,
	}
	if params.DiscountCode != nil {
		req.DiscountCode = *params.DiscountCode
	}

	breakdown, err := u.engine.Compute(req, cfg, disc)
	if err != nil {
		return nil, u.mapPricingErr(err)
	}

	// Boundary logging point for malformed rules: the quote already
	// succeeded without them.
	for _, issue := range breakdown.SkippedRules {
		u.logger.Warn("pricing rule skipped",
			slog.String("rule_id", issue.RuleID.String()),
			slog.String("rule", issue.Name),
			slog.String("reason", issue.Reason),
			slog.String("scope", params.Scope.Key()),
		)
	}
	return breakdown, nil
}

func (u *quoteUseCaseImpl) loadConfig(ctx context.Context, scope capacity.Scope) (pricing.Config, error) {
	var (
		cfg pricing.Config
		err error
	)
	switch scope.ProductType() {
	case product.TypeTour:
		var c *pricing.TourConfig
		c, err = u.configs.TourConfig(ctx, scope.ProductID(), scope.ScopeID())
		if c != nil {
			cfg = *c
		}
	case product.TypeEvent:
		var c *pricing.EventConfig
		c, err = u.configs.EventConfig(ctx, scope.ProductID(), scope.ScopeID())
		if c != nil {
			cfg = *c
		}
	case product.TypeTransfer:
		var c *pricing.TransferConfig
		c, err = u.configs.TransferConfig(ctx, scope.ProductID(), scope.ScopeID())
		if c != nil {
			cfg = *c
		}
	default:
		return nil, errs.Mark(pricing.ErrInvalidProductType, ErrQuoteValidation)
	}
	if err != nil {
		return nil, wrapStoreErr(err, ErrPricingConfigNotFound, nil)
	}
	return cfg, nil
}

func (u *quoteUseCaseImpl) loadDiscount(ctx context.Context, code *string) (*pricing.Discount, error) {
	if code == nil || *code == "" {
		return nil, nil
	}
	disc, err := u.discounts.FindByCode(ctx, *code)
	if err != nil {
		return nil, wrapStoreErr(err, ErrInvalidDiscountCode, nil)
	}
	return disc, nil
}

func (u *quoteUseCaseImpl) mapPricingErr(err error) error {
	switch {
	case errors.Is(err, pricing.ErrDiscountInactive),
		errors.Is(err, pricing.ErrDiscountNotYetValid),
		errors.Is(err, pricing.ErrDiscountExpired),
		errors.Is(err, pricing.ErrDiscountExhausted),
		errors.Is(err, pricing.ErrMalformedDiscount):
		return errs.Mark(err, ErrInvalidDiscountCode)
	default:
		return errs.Mark(err, ErrQuoteValidation)
	}
}
