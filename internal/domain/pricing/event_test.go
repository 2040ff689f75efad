//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var performanceAt = time.Date(2026, 8, 15, 19, 0, 0, 0, time.UTC)

func eventRequest(qty int) pricing.Request {
	return pricing.Request{
		ProductType: product.TypeEvent,
		Currency:    "EUR",
		QuotedAt:    quotedAt,
		BookedFor:   performanceAt,
		Quantity:    qty,
	}
}

func eventConfig() pricing.EventConfig {
	return pricing.EventConfig{
		SectionBasePrice:   pricing.NewMoney(8000),
		TicketTypeModifier: 1.25,
		PerformanceAt:      performanceAt,
	}
}

func TestEventCompute(t *testing.T) {
	engine := pricing.NewEngine()

	t.Run("ticket type modifier scales the section price", func(t *testing.T) {
		b, err := engine.Compute(eventRequest(2), eventConfig(), nil)
		require.NoError(t, err)

		// unit 80.00 x 1.25 = 100.00, two seats
		assert.Equal(t, int64(20000), b.Base.Cents())
		assert.Equal(t, int64(2000), b.TaxAmount.Cents())
		assert.Equal(t, int64(22000), b.FinalPrice.Cents())
		require.Len(t, b.Lines, 1)
		assert.Equal(t, int64(10000), b.Lines[0].UnitPrice.Cents())
	})

	t.Run("quantity required", func(t *testing.T) {
		_, err := engine.Compute(eventRequest(0), eventConfig(), nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})

	t.Run("negative modifier rejected", func(t *testing.T) {
		cfg := eventConfig()
		cfg.TicketTypeModifier = -0.5
		_, err := engine.Compute(eventRequest(1), cfg, nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidTicketModifier)
	})

	t.Run("rules apply in descending priority", func(t *testing.T) {
		cfg := eventConfig()
		cfg.Rules = []pricing.Rule{
			{ID: uuid.New(), Name: "early bird", Kind: pricing.CalcPercentage, Percent: 10, Priority: 5, Active: true},
			{ID: uuid.New(), Name: "gala supplement", Kind: pricing.CalcFixed, Amount: pricing.NewMoney(5000), Priority: 10, Active: true},
		}

		b, err := engine.Compute(eventRequest(2), cfg, nil)
		require.NoError(t, err)

		// 200.00 +50.00 (priority 10) then +10% of 250.00 = +25.00
		require.Len(t, b.Adjustments, 2)
		assert.Equal(t, "gala supplement", b.Adjustments[0].Label)
		assert.Equal(t, int64(5000), b.Adjustments[0].Amount.Cents())
		assert.Equal(t, "early bird", b.Adjustments[1].Label)
		assert.Equal(t, int64(2500), b.Adjustments[1].Amount.Cents())
		assert.Equal(t, int64(30250), b.FinalPrice.Cents())
	})

	t.Run("malformed rule skipped and reported", func(t *testing.T) {
		badID := uuid.New()
		cfg := eventConfig()
		cfg.Rules = []pricing.Rule{
			{ID: badID, Name: "broken", Kind: pricing.CalcPercentage, Percent: 150, Priority: 20, Active: true},
			{ID: uuid.New(), Name: "matinee discount", Kind: pricing.CalcPercentage, Percent: -10, Priority: 10, Active: true},
		}

		b, err := engine.Compute(eventRequest(2), cfg, nil)
		require.NoError(t, err)

		require.Len(t, b.SkippedRules, 1)
		assert.Equal(t, badID, b.SkippedRules[0].RuleID)
		assert.Contains(t, b.SkippedRules[0].Reason, "out of range")

		// the valid rule still applied: 200.00 - 10%
		require.Len(t, b.Adjustments, 1)
		assert.Equal(t, int64(-2000), b.Adjustments[0].Amount.Cents())
	})

	t.Run("inactive and non-matching rules are silently skipped", func(t *testing.T) {
		future := performanceAt.Add(24 * time.Hour)
		cfg := eventConfig()
		cfg.Rules = []pricing.Rule{
			{ID: uuid.New(), Name: "inactive", Kind: pricing.CalcFixed, Amount: pricing.NewMoney(100), Active: false},
			{ID: uuid.New(), Name: "not yet valid", Kind: pricing.CalcFixed, Amount: pricing.NewMoney(100), ValidFrom: &future, Active: true},
		}

		b, err := engine.Compute(eventRequest(1), cfg, nil)
		require.NoError(t, err)
		assert.Empty(t, b.Adjustments)
		assert.Empty(t, b.SkippedRules)
	})

	t.Run("fees stack on the discounted amount", func(t *testing.T) {
		maxFee := pricing.NewMoney(1000)
		minAmount := pricing.NewMoney(50000)
		cfg := eventConfig()
		cfg.Fees = []pricing.Fee{
			{ID: uuid.New(), Name: "booking fee", Kind: pricing.CalcFixed, Amount: pricing.NewMoney(500), Active: true},
			{ID: uuid.New(), Name: "per ticket levy", Kind: pricing.CalcPerUnit, Amount: pricing.NewMoney(200), Active: true},
			{ID: uuid.New(), Name: "service charge", Kind: pricing.CalcPercentage, Percent: 10, MaxFee: &maxFee, Active: true},
			{ID: uuid.New(), Name: "large order fee", Kind: pricing.CalcFixed, Amount: pricing.NewMoney(9900), MinAmount: &minAmount, Active: true},
		}

		b, err := engine.Compute(eventRequest(2), cfg, nil)
		require.NoError(t, err)

		// fee base 200.00: 5.00 fixed + 2.00x2 per unit + 10% capped at 10.00;
		// the large order fee's minimum gate does not trip
		assert.Equal(t, int64(1900), b.FeesTotal.Cents())
		require.Len(t, b.Fees, 3)
		assert.Equal(t, "service charge", b.Fees[2].Label)
		assert.Equal(t, int64(1000), b.Fees[2].Amount.Cents())

		// tax on 200.00 + 19.00
		assert.Equal(t, int64(2190), b.TaxAmount.Cents())
		assert.Equal(t, int64(24090), b.FinalPrice.Cents())
	})

	t.Run("discount shrinks the fee base", func(t *testing.T) {
		cfg := eventConfig()
		cfg.Fees = []pricing.Fee{
			{ID: uuid.New(), Name: "service charge", Kind: pricing.CalcPercentage, Percent: 10, Active: true},
		}
		disc := &pricing.Discount{
			ID:       uuid.New(),
			Code:     "HALF",
			Kind:     pricing.CalcPercentage,
			Percent:  50,
			IsActive: true,
		}

		b, err := engine.Compute(eventRequest(2), cfg, disc)
		require.NoError(t, err)

		// 200.00 - 100.00 = 100.00 fee base, 10% fee = 10.00
		assert.Equal(t, int64(10000), b.DiscountAmount.Cents())
		assert.Equal(t, int64(1000), b.FeesTotal.Cents())
		// tax on 110.00
		assert.Equal(t, int64(1100), b.TaxAmount.Cents())
		assert.Equal(t, int64(12100), b.FinalPrice.Cents())
	})
}

func TestEngineConfigMismatch(t *testing.T) {
	engine := pricing.NewEngine()

	_, err := engine.Compute(eventRequest(1), tourConfig(), nil)
	assert.ErrorIs(t, err, pricing.ErrConfigMismatch)

	_, err = engine.Compute(tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 1}), eventConfig(), nil)
	assert.ErrorIs(t, err, pricing.ErrConfigMismatch)
}
