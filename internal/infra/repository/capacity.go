package repository

import (
	"context"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"
	"travel-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CapacityRepository persists pool counters. It takes no row locks of its
// own: per-scope serialization lives in the capacity ledger, and duplicating
// it here is exactly the scattered-locking failure mode this core removes.
type CapacityRepository struct {
	pool *pgxpool.Pool
}

func NewCapacityRepository(pool *pgxpool.Pool) *CapacityRepository {
	return &CapacityRepository{pool: pool}
}

func (r *CapacityRepository) Get(ctx context.Context, scope capacity.Scope) (*capacity.Pool, error) {
	const query = `
SELECT total, reserved, sold
FROM capacity_pools
WHERE product_type = $1 AND product_id = $2 AND scope_id = $3`

	var total, reserved, sold int
	err := r.pool.QueryRow(ctx, query,
		scope.ProductType().String(), scope.ProductID(), scope.ScopeID(),
	).Scan(&total, &reserved, &sold)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get capacity pool", err)
	}

	entity, err := capacity.ReconstructPool(scope, total, reserved, sold)
	if err != nil {
		// Broken persisted counters surface as-is so the ledger can alert.
		return nil, err
	}
	return entity, nil
}

func (r *CapacityRepository) Save(ctx context.Context, pool *capacity.Pool) error {
	const query = `
UPDATE capacity_pools
SET total = $4, reserved = $5, sold = $6, updated_at = now()
WHERE product_type = $1 AND product_id = $2 AND scope_id = $3`

	scope := pool.Scope()
	tag, err := r.pool.Exec(ctx, query,
		scope.ProductType().String(), scope.ProductID(), scope.ScopeID(),
		pool.Total(), pool.Reserved(), pool.Sold(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save capacity pool", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("capacity pool not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CapacityRepository) Create(ctx context.Context, pool *capacity.Pool) error {
	const query = `
INSERT INTO capacity_pools (product_type, product_id, scope_id, total, reserved, sold)
VALUES ($1, $2, $3, $4, $5, $6)`

	scope := pool.Scope()
	_, err := r.pool.Exec(ctx, query,
		scope.ProductType().String(), scope.ProductID(), scope.ScopeID(),
		pool.Total(), pool.Reserved(), pool.Sold(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create capacity pool", err)
	}
	return nil
}

// scopeFromRow rebuilds a Scope from its persisted columns.
func scopeFromRow(productType string, productID uuid.UUID, scopeID string) (capacity.Scope, error) {
	return capacity.NewScope(product.Type(productType), productID, scopeID)
}
