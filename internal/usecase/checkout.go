package usecase

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCheckoutEmpty = errs.New("checkout requires at least one hold")

type CheckoutParams struct {
	HoldIDs      []uuid.UUID
	DiscountCode *string
}

type CheckoutResult struct {
	Bookings []BookingRecord
}

// CheckoutUseCase is the order-facing side of the core: promote every hold
// of a cart, and the inverse capacity path for cancelled finalized bookings.
type CheckoutUseCase interface {
	Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error)
	CancelBooking(ctx context.Context, scope capacity.Scope, qty int) error
}

type checkoutUseCaseImpl struct {
	manager   ReservationManager
	ledger    CapacityLedger
	discounts DiscountRepository
	logger    *slog.Logger
}

func NewCheckoutUseCase(
	manager ReservationManager,
	ledger CapacityLedger,
	discounts DiscountRepository,
	logger *slog.Logger,
) CheckoutUseCase {
	return &checkoutUseCaseImpl{
		manager:   manager,
		ledger:    ledger,
		discounts: discounts,
		logger:    logger,
	}
}

// Checkout promotes every hold in order. On failure it stops and returns;
// promotes are idempotent, so the order service simply retries the whole
// call after resolving the failed line.
func (u *checkoutUseCaseImpl) Checkout(ctx context.Context, params CheckoutParams) (*CheckoutResult, error) {
	if len(params.HoldIDs) == 0 {
		return nil, ErrCheckoutEmpty
	}

	bookings := make([]BookingRecord, 0, len(params.HoldIDs))
	for _, id := range params.HoldIDs {
		record, err := u.manager.PromoteHold(ctx, id)
		if err != nil {
			return nil, errs.Wrap(err, "checkout failed for hold "+id.String())
		}
		bookings = append(bookings, *record)
	}

	// The one place a discount usage counter moves: finalization, not quote.
	if params.DiscountCode != nil && *params.DiscountCode != "" {
		if err := u.discounts.IncrementUsage(ctx, *params.DiscountCode); err != nil {
			// Bookings stand; a missed counter tick is recoverable by ops,
			// an undone checkout is not.
			u.logger.Error("failed to increment discount usage",
				slog.String("code", *params.DiscountCode),
				slog.String("error", err.Error()),
			)
		}
	}

	return &CheckoutResult{Bookings: bookings}, nil
}

func (u *checkoutUseCaseImpl) CancelBooking(ctx context.Context, scope capacity.Scope, qty int) error {
	return u.ledger.ReleaseSold(ctx, scope, qty)
}
