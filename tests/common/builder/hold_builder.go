//go:build unit

package builder

import (
	"time"

	"travel-booking/internal/domain/capacity"
	domhold "travel-booking/internal/domain/hold"
	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	ProductType product.Type
	ProductID   uuid.UUID
	ScopeID     string
	Quantity    int
	OwnerRef    string
	Now         time.Time
	TTL         time.Duration
}

func NewHoldBuilder() *HoldBuilder {
	return &HoldBuilder{
		ProductType: product.TypeTour,
		ProductID:   uuid.New(),
		ScopeID:     "2026-07-01/standard",
		Quantity:    2,
		OwnerRef:    "cart-1234",
		Now:         time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
		TTL:         30 * time.Minute,
	}
}

func (b *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(b)
	return b
}

func (b *HoldBuilder) BuildScope() (capacity.Scope, error) {
	return capacity.NewScope(b.ProductType, b.ProductID, b.ScopeID)
}

func (b *HoldBuilder) BuildDomain() (*domhold.Hold, error) {
	scope, err := b.BuildScope()
	if err != nil {
		return nil, err
	}
	return domhold.NewHold(scope, b.Quantity, b.OwnerRef, b.Now, b.TTL)
}
