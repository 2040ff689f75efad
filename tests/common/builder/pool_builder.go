//go:build unit

package builder

import (
	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
)

type PoolBuilder struct {
	ProductType product.Type
	ProductID   uuid.UUID
	ScopeID     string
	Total       int
	Reserved    int
	Sold        int
}

func NewPoolBuilder() *PoolBuilder {
	return &PoolBuilder{
		ProductType: product.TypeEvent,
		ProductID:   uuid.New(),
		ScopeID:     "2026-08-15T19:00/balcony/standard",
		Total:       50,
	}
}

func (b *PoolBuilder) With(mutate func(*PoolBuilder)) *PoolBuilder {
	mutate(b)
	return b
}

func (b *PoolBuilder) BuildScope() (capacity.Scope, error) {
	return capacity.NewScope(b.ProductType, b.ProductID, b.ScopeID)
}

func (b *PoolBuilder) BuildDomain() (*capacity.Pool, error) {
	scope, err := b.BuildScope()
	if err != nil {
		return nil, err
	}
	if b.Reserved == 0 && b.Sold == 0 {
		return capacity.NewPool(scope, b.Total)
	}
	return capacity.ReconstructPool(scope, b.Total, b.Reserved, b.Sold)
}
