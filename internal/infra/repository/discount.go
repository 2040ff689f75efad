package repository

import (
	"context"

	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DiscountRepository struct {
	pool *pgxpool.Pool
}

func NewDiscountRepository(pool *pgxpool.Pool) *DiscountRepository {
	return &DiscountRepository{pool: pool}
}

func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*pricing.Discount, error) {
	const query = `
SELECT id, code, kind, percent, amount_cents, is_active, valid_from, valid_until, max_uses, current_uses
FROM discounts
WHERE code = $1`

	var (
		d           pricing.Discount
		kind        string
		amountCents int64
	)
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&d.ID, &d.Code, &kind, &d.Percent, &amountCents,
		&d.IsActive, &d.ValidFrom, &d.ValidUntil, &d.MaxUses, &d.CurrentUses,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find discount by code", err)
	}
	d.Kind = pricing.CalcKind(kind)
	d.Amount = pricing.NewMoney(amountCents)
	return &d, nil
}

// IncrementUsage bumps the usage counter without going past max_uses. A
// concurrent exhaustion shows up as zero rows affected.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, code string) error {
	const query = `
UPDATE discounts
SET current_uses = current_uses + 1, updated_at = now()
WHERE code = $1 AND is_active AND (max_uses IS NULL OR current_uses < max_uses)`

	tag, err := r.pool.Exec(ctx, query, code)
	if err != nil {
		return infra.WrapRepoErr("failed to increment discount usage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not usable", nil, infra.KindNotFound)
	}
	return nil
}
