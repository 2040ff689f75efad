package usecase

import (
	"context"
	"log/slog"

	"travel-booking/internal/domain/hold"
	"travel-booking/internal/pkg/clock"
	"travel-booking/internal/pkg/config"

	"github.com/google/uuid"
)

// Janitor reclaims capacity from holds whose TTL elapsed without a promote
// or an explicit release. Each expiry is a conditional transition: if a
// concurrent promote wins the same hold, the janitor's transition affects
// nothing and it moves on.
type Janitor struct {
	holds  HoldRepository
	ledger CapacityLedger
	clock  clock.Clock
	cfg    config.JanitorConfig
	logger *slog.Logger
}

func NewJanitor(
	holds HoldRepository,
	ledger CapacityLedger,
	clk clock.Clock,
	cfg config.JanitorConfig,
	logger *slog.Logger,
) *Janitor {
	return &Janitor{
		holds:  holds,
		ledger: ledger,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}
}

// Sweep expires one batch of stale holds, retries terminal holds whose
// capacity never made it back, and returns how many it reclaimed.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	now := j.clock.Now()
	stale, err := j.holds.FindExpired(ctx, now, j.cfg.BatchSize)
	if err != nil {
		return 0, err
	}

	reclaimed := 0
	for _, h := range stale {
		won, err := j.holds.TransitionStatus(ctx, h.ID(), hold.StatusActive, hold.StatusExpired, nil)
		if err != nil {
			j.logger.Error("janitor failed to expire hold",
				slog.String("hold_id", h.ID().String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		if !won {
			// A promote or release got there first and owns the capacity.
			continue
		}
		if j.release(ctx, h.ID()) {
			reclaimed++
		}
	}

	reclaimed += j.reclaim(ctx)

	if reclaimed > 0 {
		j.logger.Info("janitor sweep reclaimed capacity",
			slog.Int("holds", reclaimed),
			slog.Int("candidates", len(stale)),
		)
	}
	return reclaimed, nil
}

// release re-reads the hold for the persisted quantity (a resize may have
// landed between the expiry read and the status guard), gives the units back
// and marks the hold settled. An unsettled hold stays visible to reclaim.
func (j *Janitor) release(ctx context.Context, id uuid.UUID) bool {
	h, err := j.holds.FindByID(ctx, id)
	if err != nil {
		j.logger.Error("janitor failed to re-read expired hold",
			slog.Bool("alert", true),
			slog.String("hold_id", id.String()),
			slog.String("error", err.Error()),
		)
		return false
	}
	if err := j.ledger.Release(ctx, h.Scope(), h.Quantity()); err != nil {
		j.logger.Error("janitor failed to release capacity",
			slog.Bool("alert", true),
			slog.String("hold_id", h.ID().String()),
			slog.String("scope", h.Scope().Key()),
			slog.String("error", err.Error()),
		)
		return false
	}
	if _, err := j.holds.MarkSettled(ctx, h.ID()); err != nil {
		j.logger.Error("janitor failed to mark hold settled",
			slog.Bool("alert", true),
			slog.String("hold_id", h.ID().String()),
			slog.String("error", err.Error()),
		)
	}
	return true
}

// reclaim retries the release for expired or released holds that still owe
// the ledger their units. Promoted-but-uncommitted holds are excluded; the
// checkout retry owns those.
func (j *Janitor) reclaim(ctx context.Context) int {
	pending, err := j.holds.FindReclaimable(ctx, j.cfg.BatchSize)
	if err != nil {
		j.logger.Error("janitor failed to list reclaimable holds",
			slog.String("error", err.Error()),
		)
		return 0
	}

	recovered := 0
	for _, h := range pending {
		if j.release(ctx, h.ID()) {
			recovered++
		}
	}
	return recovered
}
