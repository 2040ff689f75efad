package usecase

import (
	"context"
	"errors"
	"log/slog"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/pkg/errs"
)

var (
	ErrPoolNotFound           = errs.New("capacity pool not found")
	ErrPoolAlreadyExists      = errs.New("capacity pool already exists")
	ErrCapacityUnavailable    = errs.New("capacity unavailable")
	ErrCapacityBelowCommitted = errs.New("total capacity below committed units")
	ErrCapacityInvariant      = errs.New("capacity invariant violation")
	ErrLockTimeout            = errs.New("capacity lock acquisition timed out")
	ErrInvalidArgument        = errs.New("invalid argument")
)

// CapacityRepository persists pool counters. Implementations do not lock;
// mutual exclusion per scope is the ledger's job alone.
type CapacityRepository interface {
	Get(ctx context.Context, scope capacity.Scope) (*capacity.Pool, error)
	Save(ctx context.Context, pool *capacity.Pool) error
	Create(ctx context.Context, pool *capacity.Pool) error
}

// CapacityLedger is the sole owner of capacity state. Every mutation of a
// pool, from any path (holds, checkout, cancellation, admin), goes through
// here; no other component may touch capacity rows.
type CapacityLedger interface {
	GetAvailable(ctx context.Context, scope capacity.Scope) (int, error)
	TryReserve(ctx context.Context, scope capacity.Scope, qty int) error
	Commit(ctx context.Context, scope capacity.Scope, qty int) error
	Release(ctx context.Context, scope capacity.Scope, qty int) error
	ReleaseSold(ctx context.Context, scope capacity.Scope, qty int) error
	AdjustTotal(ctx context.Context, scope capacity.Scope, newTotal int) error
	CreatePool(ctx context.Context, scope capacity.Scope, total int) error
}

type ledgerImpl struct {
	repo   CapacityRepository
	locks  *scopeLocks
	cfg    config.LedgerConfig
	logger *slog.Logger
}

func NewCapacityLedger(repo CapacityRepository, cfg config.LedgerConfig, logger *slog.Logger) CapacityLedger {
	return &ledgerImpl{
		repo:   repo,
		locks:  newScopeLocks(),
		cfg:    cfg,
		logger: logger,
	}
}

func (l *ledgerImpl) GetAvailable(ctx context.Context, scope capacity.Scope) (int, error) {
	pool, err := l.repo.Get(ctx, scope)
	if err != nil {
		return 0, l.mapRepoErr(scope, "get_available", err)
	}
	return pool.Available(), nil
}

func (l *ledgerImpl) TryReserve(ctx context.Context, scope capacity.Scope, qty int) error {
	return l.withScope(ctx, scope, "reserve", func(pool *capacity.Pool) error {
		return pool.Reserve(qty)
	})
}

func (l *ledgerImpl) Commit(ctx context.Context, scope capacity.Scope, qty int) error {
	return l.withScope(ctx, scope, "commit", func(pool *capacity.Pool) error {
		return pool.CommitReserved(qty)
	})
}

func (l *ledgerImpl) Release(ctx context.Context, scope capacity.Scope, qty int) error {
	return l.withScope(ctx, scope, "release", func(pool *capacity.Pool) error {
		return pool.ReleaseReserved(qty)
	})
}

func (l *ledgerImpl) ReleaseSold(ctx context.Context, scope capacity.Scope, qty int) error {
	return l.withScope(ctx, scope, "release_sold", func(pool *capacity.Pool) error {
		return pool.ReleaseSold(qty)
	})
}

func (l *ledgerImpl) AdjustTotal(ctx context.Context, scope capacity.Scope, newTotal int) error {
	return l.withScope(ctx, scope, "adjust_total", func(pool *capacity.Pool) error {
		return pool.AdjustTotal(newTotal)
	})
}

func (l *ledgerImpl) CreatePool(ctx context.Context, scope capacity.Scope, total int) error {
	pool, err := capacity.NewPool(scope, total)
	if err != nil {
		return errs.Mark(err, ErrInvalidArgument)
	}
	if err := l.repo.Create(ctx, pool); err != nil {
		return l.mapRepoErr(scope, "create_pool", err)
	}
	return nil
}

// withScope runs one mutation under the scope lock: acquire, re-read the
// freshest state, validate and mutate through the entity, write back.
func (l *ledgerImpl) withScope(ctx context.Context, scope capacity.Scope, op string, mutate func(*capacity.Pool) error) error {
	release, err := l.locks.acquire(ctx, scope.Key(), l.cfg.LockTimeout)
	if err != nil {
		return errs.Mark(err, ErrLockTimeout)
	}
	defer release()

	pool, err := l.repo.Get(ctx, scope)
	if err != nil {
		return l.mapRepoErr(scope, op, err)
	}
	if err := mutate(pool); err != nil {
		return l.mapDomainErr(scope, op, err)
	}
	if err := l.repo.Save(ctx, pool); err != nil {
		return l.mapRepoErr(scope, op, err)
	}
	return nil
}

func (l *ledgerImpl) mapDomainErr(scope capacity.Scope, op string, err error) error {
	switch {
	case errors.Is(err, capacity.ErrCapacityUnavailable):
		return errs.Mark(err, ErrCapacityUnavailable)
	case errors.Is(err, capacity.ErrCapacityBelowCommitted):
		return errs.Mark(err, ErrCapacityBelowCommitted)
	case errors.Is(err, capacity.ErrInvariantViolation):
		l.alert(scope, op, err)
		return errs.Mark(err, ErrCapacityInvariant)
	case errors.Is(err, capacity.ErrInvalidQuantity):
		return errs.Mark(err, ErrInvalidArgument)
	default:
		return err
	}
}

func (l *ledgerImpl) mapRepoErr(scope capacity.Scope, op string, err error) error {
	if errors.Is(err, capacity.ErrInvariantViolation) {
		// Persisted counters that break the invariant; never repaired silently.
		l.alert(scope, op, err)
		return errs.Mark(err, ErrCapacityInvariant)
	}
	return wrapStoreErr(err, ErrPoolNotFound, ErrPoolAlreadyExists)
}

// alert is the single escalation point for fatal capacity conditions.
func (l *ledgerImpl) alert(scope capacity.Scope, op string, err error) {
	l.logger.Error("capacity invariant violation",
		slog.Bool("alert", true),
		slog.String("scope", scope.Key()),
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
}
