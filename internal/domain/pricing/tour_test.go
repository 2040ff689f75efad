//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/domain/product"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quotedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func tourRequest(participants map[pricing.AgeGroup]int) pricing.Request {
	return pricing.Request{
		ProductType:  product.TypeTour,
		Currency:     "EUR",
		QuotedAt:     quotedAt,
		BookedFor:    quotedAt.AddDate(0, 1, 0),
		Participants: participants,
	}
}

func tourConfig() pricing.TourConfig {
	return pricing.TourConfig{
		BasePrice: pricing.NewMoney(10000),
		AgeFactors: map[pricing.AgeGroup]float64{
			pricing.AgeGroupAdult: 1.0,
			pricing.AgeGroupChild: 0.5,
		},
	}
}

func TestTourCompute(t *testing.T) {
	engine := pricing.NewEngine()

	t.Run("age factors scale the base price per participant", func(t *testing.T) {
		req := tourRequest(map[pricing.AgeGroup]int{
			pricing.AgeGroupAdult:  2,
			pricing.AgeGroupChild:  1,
			pricing.AgeGroupInfant: 1,
		})

		b, err := engine.Compute(req, tourConfig(), nil)
		require.NoError(t, err)

		// 2x100.00 + 1x50.00 + infant 0
		assert.Equal(t, int64(25000), b.Base.Cents())
		assert.Equal(t, int64(2500), b.TaxAmount.Cents())
		assert.Equal(t, int64(27500), b.FinalPrice.Cents())

		wantLines := []pricing.Line{
			{Label: "adult", UnitPrice: pricing.NewMoney(10000), Quantity: 2, Amount: pricing.NewMoney(20000)},
			{Label: "child", UnitPrice: pricing.NewMoney(5000), Quantity: 1, Amount: pricing.NewMoney(5000)},
			{Label: "infant", UnitPrice: pricing.Zero(), Quantity: 1, Amount: pricing.Zero()},
		}
		assert.Empty(t, cmp.Diff(wantLines, b.Lines))
	})

	t.Run("infant is zero even with a configured factor", func(t *testing.T) {
		cfg := tourConfig()
		cfg.AgeFactors[pricing.AgeGroupInfant] = 0.3

		b, err := engine.Compute(tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupInfant: 2}), cfg, nil)
		require.NoError(t, err)
		assert.True(t, b.Base.IsZero())
		assert.True(t, b.FinalPrice.IsZero())
	})

	t.Run("unconfigured group defaults to factor one", func(t *testing.T) {
		b, err := engine.Compute(tourRequest(map[pricing.AgeGroup]int{"senior": 1}), tourConfig(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), b.Base.Cents())
	})

	t.Run("factor out of range rejected", func(t *testing.T) {
		cfg := tourConfig()
		cfg.AgeFactors[pricing.AgeGroupAdult] = 2.5

		_, err := engine.Compute(tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 1}), cfg, nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidAgeFactor)
	})

	t.Run("participant breakdown required", func(t *testing.T) {
		_, err := engine.Compute(tourRequest(nil), tourConfig(), nil)
		assert.ErrorIs(t, err, pricing.ErrNoParticipants)
	})

	t.Run("non-positive participant count rejected", func(t *testing.T) {
		_, err := engine.Compute(tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 0}), tourConfig(), nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})

	t.Run("percentage discount applies before tax", func(t *testing.T) {
		disc := &pricing.Discount{
			ID:       uuid.New(),
			Code:     "SUMMER10",
			Kind:     pricing.CalcPercentage,
			Percent:  10,
			IsActive: true,
		}

		b, err := engine.Compute(tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 2}), tourConfig(), disc)
		require.NoError(t, err)

		// 200.00 - 20.00 = 180.00, tax 18.00
		assert.Equal(t, int64(2000), b.DiscountAmount.Cents())
		assert.Equal(t, int64(1800), b.TaxAmount.Cents())
		assert.Equal(t, int64(19800), b.FinalPrice.Cents())
	})

	t.Run("fixed discount capped at the subtotal", func(t *testing.T) {
		cfg := pricing.TourConfig{BasePrice: pricing.NewMoney(3000)}
		disc := &pricing.Discount{
			ID:       uuid.New(),
			Code:     "FLAT50",
			Kind:     pricing.CalcFixed,
			Amount:   pricing.NewMoney(5000),
			IsActive: true,
		}

		b, err := engine.Compute(tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 1}), cfg, disc)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), b.DiscountAmount.Cents())
		assert.True(t, b.FinalPrice.IsZero())
	})

	t.Run("options join the discountable subtotal", func(t *testing.T) {
		optID := uuid.New()
		cfg := tourConfig()
		cfg.Options = map[uuid.UUID]pricing.Option{
			optID: {ID: optID, Name: "lunch", Kind: pricing.CalcFixed, Price: pricing.NewMoney(1500)},
		}

		req := tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 1})
		req.Options = []pricing.OptionSelection{{OptionID: optID, Quantity: 2}}

		b, err := engine.Compute(req, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), b.OptionsTotal.Cents())
		// (100.00 + 30.00) + 10% tax
		assert.Equal(t, int64(14300), b.FinalPrice.Cents())
	})

	t.Run("unknown option rejected", func(t *testing.T) {
		req := tourRequest(map[pricing.AgeGroup]int{pricing.AgeGroupAdult: 1})
		req.Options = []pricing.OptionSelection{{OptionID: uuid.New(), Quantity: 1}}

		_, err := engine.Compute(req, tourConfig(), nil)
		assert.ErrorIs(t, err, pricing.ErrUnknownOption)
	})
}
