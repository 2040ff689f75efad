package repository

import (
	"context"
	"time"

	"travel-booking/internal/domain/hold"
	"travel-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldRepository struct {
	pool *pgxpool.Pool
}

func NewHoldRepository(pool *pgxpool.Pool) *HoldRepository {
	return &HoldRepository{pool: pool}
}

func (r *HoldRepository) Create(ctx context.Context, h *hold.Hold) error {
	const query = `
INSERT INTO reservation_holds
	(id, product_type, product_id, scope_id, qty, owner_ref, status, booking_ref, settled, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	scope := h.Scope()
	_, err := r.pool.Exec(ctx, query,
		h.ID(), scope.ProductType().String(), scope.ProductID(), scope.ScopeID(),
		h.Quantity(), h.OwnerRef(), h.Status().String(), h.BookingRef(), h.Settled(),
		h.ExpiresAt(), h.CreatedAt(), h.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create hold", err)
	}
	return nil
}

func (r *HoldRepository) FindByID(ctx context.Context, id uuid.UUID) (*hold.Hold, error) {
	const query = `
SELECT id, product_type, product_id, scope_id, qty, owner_ref, status, booking_ref, settled, expires_at, created_at, updated_at
FROM reservation_holds
WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	return scanHold(row)
}

// ExtendExpiry pushes the expiry of an active hold. Renewing never touches
// capacity.
func (r *HoldRepository) ExtendExpiry(ctx context.Context, id uuid.UUID, expiresAt time.Time) (bool, error) {
	const query = `
UPDATE reservation_holds
SET expires_at = $2, updated_at = now()
WHERE id = $1 AND status = 'active'`

	tag, err := r.pool.Exec(ctx, query, id, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to extend hold expiry", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *HoldRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, qty int, expiresAt time.Time) (bool, error) {
	const query = `
UPDATE reservation_holds
SET qty = $2, expires_at = $3, updated_at = now()
WHERE id = $1 AND status = 'active'`

	tag, err := r.pool.Exec(ctx, query, id, qty, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update hold quantity", err)
	}
	return tag.RowsAffected() == 1, nil
}

// TransitionStatus performs the conditional status update that decides every
// race on a hold: exactly one caller observes true.
func (r *HoldRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to hold.Status, bookingRef *uuid.UUID) (bool, error) {
	const query = `
UPDATE reservation_holds
SET status = $3, booking_ref = COALESCE($4, booking_ref), updated_at = now()
WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, from.String(), to.String(), bookingRef)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition hold status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkSettled flags the hold's capacity movement as applied. Conditional so
// a duplicate settle is observable to the caller.
func (r *HoldRepository) MarkSettled(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `
UPDATE reservation_holds
SET settled = true, updated_at = now()
WHERE id = $1 AND settled = false`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark hold settled", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *HoldRepository) FindExpired(ctx context.Context, now time.Time, limit int) ([]*hold.Hold, error) {
	const query = `
SELECT id, product_type, product_id, scope_id, qty, owner_ref, status, booking_ref, settled, expires_at, created_at, updated_at
FROM reservation_holds
WHERE status = 'active' AND expires_at < $1
ORDER BY expires_at
LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find expired holds", err)
	}
	defer rows.Close()
	return collectHolds(rows)
}

// FindReclaimable returns terminal holds that still owe the ledger a release.
// Promoted holds are excluded: an unsettled promote is finished by the
// checkout retry, not by the janitor.
func (r *HoldRepository) FindReclaimable(ctx context.Context, limit int) ([]*hold.Hold, error) {
	const query = `
SELECT id, product_type, product_id, scope_id, qty, owner_ref, status, booking_ref, settled, expires_at, created_at, updated_at
FROM reservation_holds
WHERE status IN ('expired', 'released') AND settled = false
ORDER BY updated_at
LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reclaimable holds", err)
	}
	defer rows.Close()
	return collectHolds(rows)
}

func collectHolds(rows pgx.Rows) ([]*hold.Hold, error) {
	var holds []*hold.Hold
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, err
		}
		holds = append(holds, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate holds", err)
	}
	return holds, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHold(row rowScanner) (*hold.Hold, error) {
	var (
		id, productID        uuid.UUID
		productType, scopeID string
		qty                  int
		ownerRef, status     string
		bookingRef           *uuid.UUID
		settled              bool
		expiresAt            time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &productType, &productID, &scopeID, &qty, &ownerRef, &status, &bookingRef, &settled, &expiresAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hold", err)
	}

	scope, err := scopeFromRow(productType, productID, scopeID)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt hold scope", err)
	}
	return hold.ReconstructHold(id, scope, qty, ownerRef, hold.Status(status), bookingRef, settled, expiresAt, createdAt, updatedAt), nil
}
