package usecase

import (
	"context"
	"log/slog"
	"time"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/hold"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrHoldNotFound     = errs.New("hold not found")
	ErrHoldNotActive    = errs.New("hold not active")
	ErrHoldExpired      = errs.New("hold expired")
	ErrHoldNotResizable = errs.New("hold quantity is fixed for this product type")
	ErrHoldQuantity     = errs.New("invalid hold quantity")
)

// HoldRepository persists reservation holds. Status changes go through
// TransitionStatus, a conditional update guarded by the current status, so
// racing transitions resolve to exactly one winner.
type HoldRepository interface {
	Create(ctx context.Context, h *hold.Hold) error
	FindByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error)
	ExtendExpiry(ctx context.Context, id uuid.UUID, expiresAt time.Time) (bool, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, qty int, expiresAt time.Time) (bool, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to hold.Status, bookingRef *uuid.UUID) (bool, error)
	// MarkSettled records that the terminal capacity movement for the hold
	// reached the ledger; settled holds are never revisited.
	MarkSettled(ctx context.Context, id uuid.UUID) (bool, error)
	FindExpired(ctx context.Context, now time.Time, limit int) ([]*hold.Hold, error)
	// FindReclaimable returns expired or released holds whose capacity was
	// never given back, typically because the ledger write failed after the
	// status transition.
	FindReclaimable(ctx context.Context, limit int) ([]*hold.Hold, error)
}

type CreateHoldParams struct {
	Scope    capacity.Scope
	Quantity int
	OwnerRef string
}

// BookingRecord is what checkout hands to the external order service once a
// hold is promoted.
type BookingRecord struct {
	HoldID     uuid.UUID
	BookingRef uuid.UUID
	Scope      capacity.Scope
	Quantity   int
	OwnerRef   string
}

// ReservationManager owns the hold lifecycle. Holds move
// Active -> {Expired, Promoted, Released}; every terminal state is final and
// a new hold must be created afterwards.
type ReservationManager interface {
	CreateHold(ctx context.Context, params CreateHoldParams) (*hold.Hold, error)
	// RenewHold extends the expiry without touching capacity. A non-positive
	// ttl means the configured TTL for the product type.
	RenewHold(ctx context.Context, holdID uuid.UUID, ttl time.Duration) (*hold.Hold, error)
	// ResizeHold changes the quantity of a tour/event hold, reserving or
	// releasing the delta, and extends the expiry like a renew.
	ResizeHold(ctx context.Context, holdID uuid.UUID, newQty int, ttl time.Duration) (*hold.Hold, error)
	ReleaseHold(ctx context.Context, holdID uuid.UUID) error
	PromoteHold(ctx context.Context, holdID uuid.UUID) (*BookingRecord, error)
	GetHold(ctx context.Context, holdID uuid.UUID) (*hold.Hold, error)
}

type reservationManagerImpl struct {
	holds  HoldRepository
	ledger CapacityLedger
	clock  clock.Clock
	cfg    config.HoldConfig
	logger *slog.Logger
}

func NewReservationManager(
	holds HoldRepository,
	ledger CapacityLedger,
	clk clock.Clock,
	cfg config.HoldConfig,
	logger *slog.Logger,
) ReservationManager {
	return &reservationManagerImpl{
		holds:  holds,
		ledger: ledger,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}
}

func (m *reservationManagerImpl) CreateHold(ctx context.Context, params CreateHoldParams) (*hold.Hold, error) {
	if params.Quantity <= 0 || params.Quantity > m.cfg.MaxQuantity {
		return nil, ErrHoldQuantity
	}

	now := m.clock.Now()
	ttl := m.cfg.TTLFor(params.Scope.ProductType().String())
	h, err := hold.NewHold(params.Scope, params.Quantity, params.OwnerRef, now, ttl)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidArgument)
	}

	// Reserve first; a hold must never exist without backing capacity.
	if err := m.ledger.TryReserve(ctx, h.Scope(), h.Quantity()); err != nil {
		return nil, err
	}
	if err := m.holds.Create(ctx, h); err != nil {
		if relErr := m.ledger.Release(ctx, h.Scope(), h.Quantity()); relErr != nil {
			m.logger.Error("failed to release capacity after hold create failure",
				slog.String("hold_id", h.ID().String()),
				slog.String("scope", h.Scope().Key()),
				slog.String("error", relErr.Error()),
			)
		}
		return nil, wrapStoreErr(err, nil, nil)
	}
	return h, nil
}

func (m *reservationManagerImpl) RenewHold(ctx context.Context, holdID uuid.UUID, ttl time.Duration) (*hold.Hold, error) {
	h, err := m.findActive(ctx, holdID)
	if err != nil {
		return nil, err
	}

	expiresAt := m.clock.Now().Add(m.effectiveTTL(h, ttl))
	ok, err := m.holds.ExtendExpiry(ctx, holdID, expiresAt)
	if err != nil {
		return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if !ok {
		return nil, ErrHoldNotActive
	}
	return m.holds.FindByID(ctx, holdID)
}

func (m *reservationManagerImpl) ResizeHold(ctx context.Context, holdID uuid.UUID, newQty int, ttl time.Duration) (*hold.Hold, error) {
	if newQty <= 0 || newQty > m.cfg.MaxQuantity {
		return nil, ErrHoldQuantity
	}

	h, err := m.findActive(ctx, holdID)
	if err != nil {
		return nil, err
	}
	if !h.ResizableQuantity() {
		return nil, ErrHoldNotResizable
	}

	expiresAt := m.clock.Now().Add(m.effectiveTTL(h, ttl))
	delta := newQty - h.Quantity()

	switch {
	case delta == 0:
		ok, err := m.holds.ExtendExpiry(ctx, holdID, expiresAt)
		if err != nil {
			return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
		}
		if !ok {
			return nil, ErrHoldNotActive
		}
	case delta > 0:
		// Grow: reserve the delta before the hold records it, so the ledger
		// never trails the hold.
		if err := m.ledger.TryReserve(ctx, h.Scope(), delta); err != nil {
			return nil, err
		}
		ok, err := m.holds.UpdateQuantity(ctx, holdID, newQty, expiresAt)
		if err != nil || !ok {
			if relErr := m.ledger.Release(ctx, h.Scope(), delta); relErr != nil {
				m.logger.Error("failed to release capacity after hold resize failure",
					slog.String("hold_id", holdID.String()),
					slog.String("error", relErr.Error()),
				)
			}
			if err != nil {
				return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
			}
			return nil, ErrHoldNotActive
		}
	default:
		// Shrink: update the hold first, then give the delta back. The
		// in-between state over-reserves briefly, which is safe; the inverse
		// order would under-reserve.
		ok, err := m.holds.UpdateQuantity(ctx, holdID, newQty, expiresAt)
		if err != nil {
			return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
		}
		if !ok {
			return nil, ErrHoldNotActive
		}
		if err := m.ledger.Release(ctx, h.Scope(), -delta); err != nil {
			return nil, err
		}
	}
	return m.holds.FindByID(ctx, holdID)
}

func (m *reservationManagerImpl) ReleaseHold(ctx context.Context, holdID uuid.UUID) error {
	h, err := m.holds.FindByID(ctx, holdID)
	if err != nil {
		return wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if h.Status().IsTerminal() {
		// Idempotent: releasing a finished hold is a no-op.
		return nil
	}

	ok, err := m.holds.TransitionStatus(ctx, holdID, hold.StatusActive, hold.StatusReleased, nil)
	if err != nil {
		return wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if !ok {
		// A racing transition won; that transition owns the capacity.
		return nil
	}
	return m.settleRelease(ctx, holdID)
}

// settleRelease gives a freshly terminal hold's units back to the ledger. It
// re-reads the hold first: the quantity read before the status guard may be
// stale if a resize landed in between, while a terminal hold's quantity is
// frozen. A failed release leaves the hold unsettled for the janitor's
// reclaim pass.
func (m *reservationManagerImpl) settleRelease(ctx context.Context, holdID uuid.UUID) error {
	h, err := m.holds.FindByID(ctx, holdID)
	if err != nil {
		return wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if err := m.ledger.Release(ctx, h.Scope(), h.Quantity()); err != nil {
		m.logger.Error("failed to release capacity for terminal hold",
			slog.Bool("alert", true),
			slog.String("hold_id", holdID.String()),
			slog.String("scope", h.Scope().Key()),
			slog.String("error", err.Error()),
		)
		return err
	}
	if _, err := m.holds.MarkSettled(ctx, holdID); err != nil {
		// The capacity went back but the hold still looks reclaimable; the
		// reclaim pass would release it again.
		m.logger.Error("failed to mark hold settled after release",
			slog.Bool("alert", true),
			slog.String("hold_id", holdID.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func (m *reservationManagerImpl) PromoteHold(ctx context.Context, holdID uuid.UUID) (*BookingRecord, error) {
	h, err := m.holds.FindByID(ctx, holdID)
	if err != nil {
		return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
	}

	switch h.Status() {
	case hold.StatusPromoted:
		// Idempotent replay: same booking reference. An unsettled hold means
		// an earlier attempt won the transition but the commit failed; the
		// retry finishes it here.
		if h.BookingRef() == nil {
			return nil, errs.New("promoted hold missing booking reference")
		}
		if !h.Settled() {
			if err := m.settleCommit(ctx, h); err != nil {
				return nil, err
			}
		}
		return m.bookingRecord(h, *h.BookingRef()), nil
	case hold.StatusExpired:
		return nil, ErrHoldExpired
	case hold.StatusReleased:
		return nil, ErrHoldNotActive
	}

	now := m.clock.Now()
	if h.HasExpired(now) {
		// Past TTL but not yet swept; reclaim here rather than waiting for
		// the janitor, then fail so the caller re-quotes and re-reserves.
		ok, terr := m.holds.TransitionStatus(ctx, holdID, hold.StatusActive, hold.StatusExpired, nil)
		if terr == nil && ok {
			_ = m.settleRelease(ctx, holdID)
		}
		return nil, ErrHoldExpired
	}

	bookingRef := uuid.New()
	ok, err := m.holds.TransitionStatus(ctx, holdID, hold.StatusActive, hold.StatusPromoted, &bookingRef)
	if err != nil {
		return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if !ok {
		// Lost the conditional update; re-read to see who won.
		current, ferr := m.holds.FindByID(ctx, holdID)
		if ferr != nil {
			return nil, wrapStoreErr(ferr, ErrHoldNotFound, nil)
		}
		if current.Status() == hold.StatusPromoted && current.BookingRef() != nil {
			return m.bookingRecord(current, *current.BookingRef()), nil
		}
		if current.Status() == hold.StatusExpired {
			return nil, ErrHoldExpired
		}
		return nil, ErrHoldNotActive
	}

	// Re-read before committing: the quantity read before the status guard
	// may be stale if a resize landed in between, while a terminal hold's
	// quantity is frozen.
	won, err := m.holds.FindByID(ctx, holdID)
	if err != nil {
		return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if err := m.settleCommit(ctx, won); err != nil {
		return nil, err
	}
	return m.bookingRecord(won, bookingRef), nil
}

// settleCommit moves a promoted hold's units from reserved to sold. A failed
// commit leaves the hold promoted but unsettled, so a checkout retry finishes
// the movement through the replay path.
func (m *reservationManagerImpl) settleCommit(ctx context.Context, h *hold.Hold) error {
	if err := m.ledger.Commit(ctx, h.Scope(), h.Quantity()); err != nil {
		return errs.Wrap(err, "failed to commit capacity for promoted hold")
	}
	if _, err := m.holds.MarkSettled(ctx, h.ID()); err != nil {
		m.logger.Error("failed to mark hold settled after commit",
			slog.Bool("alert", true),
			slog.String("hold_id", h.ID().String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func (m *reservationManagerImpl) GetHold(ctx context.Context, holdID uuid.UUID) (*hold.Hold, error) {
	h, err := m.holds.FindByID(ctx, holdID)
	if err != nil {
		return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	return h, nil
}

func (m *reservationManagerImpl) findActive(ctx context.Context, holdID uuid.UUID) (*hold.Hold, error) {
	h, err := m.holds.FindByID(ctx, holdID)
	if err != nil {
		return nil, wrapStoreErr(err, ErrHoldNotFound, nil)
	}
	if !h.IsActive() {
		if h.Status() == hold.StatusExpired {
			return nil, ErrHoldExpired
		}
		return nil, ErrHoldNotActive
	}
	if h.HasExpired(m.clock.Now()) {
		// No implicit extension past the TTL.
		return nil, ErrHoldExpired
	}
	return h, nil
}

func (m *reservationManagerImpl) effectiveTTL(h *hold.Hold, ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	return m.cfg.TTLFor(h.Scope().ProductType().String())
}

func (m *reservationManagerImpl) bookingRecord(h *hold.Hold, ref uuid.UUID) *BookingRecord {
	return &BookingRecord{
		HoldID:     h.ID(),
		BookingRef: ref,
		Scope:      h.Scope(),
		Quantity:   h.Quantity(),
		OwnerRef:   h.OwnerRef(),
	}
}
