//go:build unit

package usecase_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"travel-booking/internal/domain/hold"
	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase"
	"travel-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJanitorFixture(t *testing.T, total int, cfg config.JanitorConfig) (*usecase.Janitor, *reservationFixture) {
	t.Helper()
	fx := newReservationFixture(t, total)
	janitor := usecase.NewJanitor(fx.holds, fx.ledger, fx.clock, cfg, slog.New(slog.DiscardHandler))
	return janitor, fx
}

func TestJanitorSweep(t *testing.T) {
	ctx := context.Background()
	cfg := config.JanitorConfig{SweepInterval: time.Minute, BatchSize: 200}

	t.Run("expires stale holds and reclaims their capacity", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		first := fx.createHold(t, 3)
		second := fx.createHold(t, 2)
		require.Equal(t, 5, fx.available(t))

		fx.clock.Add(fx.cfg.TourTTL + time.Second)
		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, reclaimed)
		assert.Equal(t, 10, fx.available(t))

		for _, h := range []*hold.Hold{first, second} {
			current, gerr := fx.manager.GetHold(ctx, h.ID())
			require.NoError(t, gerr)
			assert.Equal(t, hold.StatusExpired, current.Status())
		}
	})

	t.Run("holds still inside their ttl are untouched", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		h := fx.createHold(t, 3)

		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, reclaimed)
		assert.Equal(t, 7, fx.available(t))

		current, gerr := fx.manager.GetHold(ctx, h.ID())
		require.NoError(t, gerr)
		assert.Equal(t, hold.StatusActive, current.Status())
	})

	t.Run("hold at its deadline instant is not yet stale", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		fx.createHold(t, 3)

		fx.clock.Add(fx.cfg.TourTTL)
		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, reclaimed)
	})

	t.Run("batch size bounds one sweep", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 20, config.JanitorConfig{SweepInterval: time.Minute, BatchSize: 2})
		for i := 0; i < 4; i++ {
			fx.createHold(t, 1)
		}
		fx.clock.Add(fx.cfg.TourTTL + time.Second)

		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, reclaimed)

		reclaimed, err = janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, reclaimed)
		assert.Equal(t, 20, fx.available(t))
	})

	t.Run("losing the transition race skips the hold", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		h := fx.createHold(t, 3)
		fx.clock.Add(fx.cfg.TourTTL + time.Second)

		// A promote lands between the expired scan and the janitor's write.
		promotedRef := h.ID()
		fx.holds.beforeWrite = func() {
			fx.holds.beforeWrite = nil
			fx.holds.forceStatus(h.ID(), hold.StatusPromoted, &promotedRef)
		}
		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, reclaimed)
		assert.Equal(t, 7, fx.available(t), "the promote owns the capacity now")
	})

	t.Run("sweep releases the quantity persisted at expiry", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		h := fx.createHold(t, 3)
		fx.clock.Add(fx.cfg.TourTTL + time.Second)

		// A shrink to 1 lands between the expired scan and the status guard.
		fx.holds.beforeWrite = func() {
			fx.holds.beforeWrite = nil
			require.NoError(t, fx.ledger.Release(ctx, fx.scope, 2))
			fx.holds.forceQuantity(h.ID(), 1)
		}
		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reclaimed)
		assert.Equal(t, 10, fx.available(t), "the stale scan row must not over-release")
	})

	t.Run("failed release is retried until the capacity returns", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		h := fx.createHold(t, 3)
		fx.clock.Add(fx.cfg.TourTTL + time.Second)

		// Both the expiry release and the same sweep's retry fail.
		fx.capacity.failSaves = 2
		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Zero(t, reclaimed)
		assert.Equal(t, 7, fx.available(t), "the units are still owed")

		reclaimed, err = janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reclaimed)
		assert.Equal(t, 10, fx.available(t))

		current, gerr := fx.manager.GetHold(ctx, h.ID())
		require.NoError(t, gerr)
		assert.Equal(t, hold.StatusExpired, current.Status())
		assert.True(t, current.Settled())
	})

	t.Run("release failure is logged and skipped, not fatal", func(t *testing.T) {
		janitor, fx := newJanitorFixture(t, 10, cfg)
		fx.createHold(t, 3)

		strayScope, err := builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) {
			b.ScopeID = "2026-07-02/standard"
		}).BuildScope()
		require.NoError(t, err)
		fx.capacity.seed(strayScope, 5, 0, 0)
		_, err = fx.manager.CreateHold(ctx, usecase.CreateHoldParams{
			Scope: strayScope, Quantity: 2, OwnerRef: "cart-1234",
		})
		require.NoError(t, err)
		fx.clock.Add(fx.cfg.TourTTL + time.Second)

		// Drop one pool so its release fails; the sweep must continue.
		fx.capacity.mu.Lock()
		delete(fx.capacity.pools, strayScope.Key())
		fx.capacity.mu.Unlock()

		reclaimed, err := janitor.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, reclaimed)
		assert.Equal(t, 10, fx.available(t))
	})
}
