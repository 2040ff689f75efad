package hold

import (
	"errors"
	"time"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("hold quantity must be positive")
	ErrInvalidOwner    = errors.New("hold owner reference required")
	ErrInvalidTTL      = errors.New("hold ttl must be positive")
	ErrNotActive       = errors.New("hold is not active")
)

// Hold is a TTL-bounded capacity reservation tied to one cart line. For tours
// and events the quantity is the sum of participants/seats; a transfer hold
// always covers exactly one vehicle booking regardless of passenger count.
type Hold struct {
	id         uuid.UUID
	scope      capacity.Scope
	qty        int
	ownerRef   string
	status     Status
	bookingRef *uuid.UUID
	// settled records that the terminal capacity movement (commit on promote,
	// release on expiry/release) has been applied to the ledger. An unsettled
	// terminal hold still owes the ledger an adjustment.
	settled   bool
	expiresAt time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewHold(scope capacity.Scope, qty int, ownerRef string, now time.Time, ttl time.Duration) (*Hold, error) {
	if scope.IsZero() {
		return nil, capacity.ErrInvalidScope
	}
	if ownerRef == "" {
		return nil, ErrInvalidOwner
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if scope.ProductType() == product.TypeTransfer {
		qty = 1
	}
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Hold{
		id:        uuid.New(),
		scope:     scope,
		qty:       qty,
		ownerRef:  ownerRef,
		status:    StatusActive,
		expiresAt: now.Add(ttl),
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructHold(
	id uuid.UUID,
	scope capacity.Scope,
	qty int,
	ownerRef string,
	status Status,
	bookingRef *uuid.UUID,
	settled bool,
	expiresAt, createdAt, updatedAt time.Time,
) *Hold {
	return &Hold{
		id:         id,
		scope:      scope,
		qty:        qty,
		ownerRef:   ownerRef,
		status:     status,
		bookingRef: bookingRef,
		settled:    settled,
		expiresAt:  expiresAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (h *Hold) ID() uuid.UUID          { return h.id }
func (h *Hold) Scope() capacity.Scope  { return h.scope }
func (h *Hold) Quantity() int          { return h.qty }
func (h *Hold) OwnerRef() string       { return h.ownerRef }
func (h *Hold) Status() Status         { return h.status }
func (h *Hold) BookingRef() *uuid.UUID { return h.bookingRef }
func (h *Hold) Settled() bool          { return h.settled }
func (h *Hold) ExpiresAt() time.Time   { return h.expiresAt }
func (h *Hold) CreatedAt() time.Time   { return h.createdAt }
func (h *Hold) UpdatedAt() time.Time   { return h.updatedAt }

func (h *Hold) IsActive() bool {
	return h.status == StatusActive
}

func (h *Hold) HasExpired(now time.Time) bool {
	return now.After(h.expiresAt)
}

// ResizableQuantity reports whether the hold's quantity may change after
// creation. Transfer holds are pinned to one vehicle; pricing, not capacity,
// scales with passenger count.
func (h *Hold) ResizableQuantity() bool {
	return h.scope.ProductType() != product.TypeTransfer
}
