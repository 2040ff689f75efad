package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDiscountInactive    = errors.New("discount is not active")
	ErrDiscountNotYetValid = errors.New("discount is not yet valid")
	ErrDiscountExpired     = errors.New("discount has expired")
	ErrDiscountExhausted   = errors.New("discount usage limit reached")
	ErrMalformedDiscount   = errors.New("malformed discount configuration")
)

// Discount is a read-only code-based discount configuration. The usage
// counter is incremented only by the order-finalization path, never here;
// a quote must be repeatable without side effects.
type Discount struct {
	ID          uuid.UUID
	Code        string
	Kind        CalcKind
	Percent     float64
	Amount      Money
	IsActive    bool
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	MaxUses     *int
	CurrentUses int
}

// Validate reports whether the discount is applicable at t.
func (d *Discount) Validate(t time.Time) error {
	if !d.IsActive {
		return ErrDiscountInactive
	}
	if d.ValidFrom != nil && t.Before(*d.ValidFrom) {
		return ErrDiscountNotYetValid
	}
	if d.ValidUntil != nil && t.After(*d.ValidUntil) {
		return ErrDiscountExpired
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return ErrDiscountExhausted
	}
	return nil
}

// AmountOff returns the discount against a subtotal. Fixed discounts are
// capped at the subtotal so the final amount never goes negative.
func (d *Discount) AmountOff(subtotal Money) (Money, error) {
	if subtotal.IsNegative() {
		subtotal = Zero()
	}
	switch d.Kind {
	case CalcPercentage:
		if d.Percent < 0 || d.Percent > 100 {
			return Zero(), ErrMalformedDiscount
		}
		return subtotal.Percent(d.Percent), nil
	case CalcFixed:
		if d.Amount.IsNegative() {
			return Zero(), ErrMalformedDiscount
		}
		return d.Amount.Min(subtotal), nil
	default:
		return Zero(), ErrMalformedDiscount
	}
}

// applyDiscount validates the discount at the quote time and returns the
// amount off the given subtotal. A nil discount contributes zero.
func applyDiscount(d *Discount, subtotal Money, quotedAt time.Time) (Money, error) {
	if d == nil {
		return Zero(), nil
	}
	if err := d.Validate(quotedAt); err != nil {
		return Zero(), err
	}
	return d.AmountOff(subtotal)
}
