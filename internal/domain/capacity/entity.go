package capacity

import (
	"errors"
)

var (
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrCapacityUnavailable    = errors.New("capacity unavailable")
	ErrCapacityBelowCommitted = errors.New("total capacity below committed units")
	ErrInvariantViolation     = errors.New("capacity invariant violation")
)

// Pool tracks the capacity counters for one scope. Invariant:
// total == available + reserved + sold, with every counter non-negative.
// Pools are mutated only via the capacity ledger, which serializes access
// per scope; the entity itself validates every transition.
type Pool struct {
	scope    Scope
	total    int
	reserved int
	sold     int
}

func NewPool(scope Scope, total int) (*Pool, error) {
	if scope.IsZero() {
		return nil, ErrInvalidScope
	}
	if total < 0 {
		return nil, ErrInvariantViolation
	}
	return &Pool{scope: scope, total: total}, nil
}

// ReconstructPool rebuilds a pool from persisted counters. A persisted state
// that breaks the invariant is surfaced loudly, never silently repaired.
func ReconstructPool(scope Scope, total, reserved, sold int) (*Pool, error) {
	if total < 0 || reserved < 0 || sold < 0 {
		return nil, ErrInvariantViolation
	}
	if reserved+sold > total {
		return nil, ErrInvariantViolation
	}
	return &Pool{scope: scope, total: total, reserved: reserved, sold: sold}, nil
}

func (p *Pool) Scope() Scope  { return p.scope }
func (p *Pool) Total() int    { return p.total }
func (p *Pool) Reserved() int { return p.reserved }
func (p *Pool) Sold() int     { return p.sold }

func (p *Pool) Available() int {
	return p.total - p.reserved - p.sold
}

// Reserve moves qty units from available to reserved.
func (p *Pool) Reserve(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.Available() {
		return ErrCapacityUnavailable
	}
	p.reserved += qty
	return nil
}

// CommitReserved moves qty units from reserved to sold. Reserving less than
// is being committed is a programming error upstream, not a user condition.
func (p *Pool) CommitReserved(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.reserved {
		return ErrInvariantViolation
	}
	p.reserved -= qty
	p.sold += qty
	return nil
}

// ReleaseReserved moves qty units from reserved back to available.
func (p *Pool) ReleaseReserved(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.reserved {
		return ErrInvariantViolation
	}
	p.reserved -= qty
	return nil
}

// ReleaseSold returns qty sold units to available. This is the order
// cancellation path: capacity was already committed, not merely reserved.
func (p *Pool) ReleaseSold(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.sold {
		return ErrInvariantViolation
	}
	p.sold -= qty
	return nil
}

// AdjustTotal applies an admin capacity change. The new total may not drop
// below the units already reserved or sold.
func (p *Pool) AdjustTotal(newTotal int) error {
	if newTotal < 0 {
		return ErrInvalidQuantity
	}
	if newTotal < p.reserved+p.sold {
		return ErrCapacityBelowCommitted
	}
	p.total = newTotal
	return nil
}
