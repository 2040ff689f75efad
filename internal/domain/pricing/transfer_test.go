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

func transferRequest(pickupHour int) pricing.Request {
	return pricing.Request{
		ProductType: product.TypeTransfer,
		Currency:    "EUR",
		QuotedAt:    quotedAt,
		BookedFor:   time.Date(2026, 7, 10, pickupHour, 30, 0, 0, time.UTC),
	}
}

func transferConfig() pricing.TransferConfig {
	return pricing.TransferConfig{
		BasePrice:            pricing.NewMoney(10000),
		PeakSurchargePct:     10,
		MidnightSurchargePct: 20,
		RoundTripEnabled:     true,
		RoundTripDiscountPct: 10,
	}
}

func TestTransferCompute(t *testing.T) {
	engine := pricing.NewEngine()

	t.Run("time surcharges", func(t *testing.T) {
		cases := []struct {
			name       string
			hour       int
			wantFinal  int64
			wantLabels int
		}{
			{name: "morning peak", hour: 8, wantFinal: 11000, wantLabels: 1},
			{name: "evening peak boundary", hour: 19, wantFinal: 11000, wantLabels: 1},
			{name: "midday no surcharge", hour: 12, wantFinal: 10000, wantLabels: 0},
			{name: "late night", hour: 23, wantFinal: 12000, wantLabels: 1},
			{name: "early morning", hour: 3, wantFinal: 12000, wantLabels: 1},
			{name: "midnight window upper boundary", hour: 6, wantFinal: 12000, wantLabels: 1},
			{name: "just after midnight window", hour: 10, wantFinal: 10000, wantLabels: 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b, err := engine.Compute(transferRequest(tc.hour), transferConfig(), nil)
				require.NoError(t, err)
				assert.Equal(t, tc.wantFinal, b.FinalPrice.Cents())
				assert.Len(t, b.Adjustments, tc.wantLabels)
				assert.True(t, b.TaxAmount.IsZero(), "transfers carry no tax")
			})
		}
	})

	t.Run("round trip prices both legs with their own surcharges", func(t *testing.T) {
		req := transferRequest(8)
		returnAt := time.Date(2026, 7, 12, 14, 0, 0, 0, time.UTC)
		req.TripType = pricing.TripRoundTrip
		req.ReturnAt = &returnAt

		b, err := engine.Compute(req, transferConfig(), nil)
		require.NoError(t, err)

		// legs 100.00 + 100.00, outbound peak +10.00, round trip -10% of 210.00
		assert.Equal(t, int64(20000), b.Base.Cents())
		assert.Equal(t, int64(2100), b.RoundTripDiscount.Cents())
		assert.Equal(t, int64(18900), b.FinalPrice.Cents())
		require.Len(t, b.Adjustments, 1)
		assert.Equal(t, "outbound peak hour surcharge", b.Adjustments[0].Label)
	})

	t.Run("round trip discount only when enabled", func(t *testing.T) {
		cfg := transferConfig()
		cfg.RoundTripEnabled = false

		req := transferRequest(12)
		returnAt := time.Date(2026, 7, 12, 12, 0, 0, 0, time.UTC)
		req.TripType = pricing.TripRoundTrip
		req.ReturnAt = &returnAt

		b, err := engine.Compute(req, cfg, nil)
		require.NoError(t, err)
		assert.True(t, b.RoundTripDiscount.IsZero())
		assert.Equal(t, int64(20000), b.FinalPrice.Cents())
	})

	t.Run("round trip requires a return time", func(t *testing.T) {
		req := transferRequest(12)
		req.TripType = pricing.TripRoundTrip

		_, err := engine.Compute(req, transferConfig(), nil)
		assert.ErrorIs(t, err, pricing.ErrMissingReturnLeg)
	})

	t.Run("empty trip type defaults to one way", func(t *testing.T) {
		b, err := engine.Compute(transferRequest(12), transferConfig(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(10000), b.Base.Cents())
	})

	t.Run("percentage option charges against the leg total", func(t *testing.T) {
		optID := uuid.New()
		cfg := transferConfig()
		cfg.Options = map[uuid.UUID]pricing.Option{
			optID: {ID: optID, Name: "meet and greet", Kind: pricing.CalcPercentage, Percent: 10},
		}

		req := transferRequest(12)
		req.Options = []pricing.OptionSelection{{OptionID: optID, Quantity: 1}}

		b, err := engine.Compute(req, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), b.OptionsTotal.Cents())
		assert.Equal(t, int64(11000), b.FinalPrice.Cents())
	})

	t.Run("discount code applies after the round trip discount", func(t *testing.T) {
		req := transferRequest(12)
		returnAt := time.Date(2026, 7, 12, 12, 0, 0, 0, time.UTC)
		req.TripType = pricing.TripRoundTrip
		req.ReturnAt = &returnAt

		disc := &pricing.Discount{
			ID:       uuid.New(),
			Code:     "RIDE10",
			Kind:     pricing.CalcPercentage,
			Percent:  10,
			IsActive: true,
		}

		b, err := engine.Compute(req, transferConfig(), disc)
		require.NoError(t, err)

		// 200.00 - 20.00 round trip, then -10% of 180.00
		assert.Equal(t, int64(2000), b.RoundTripDiscount.Cents())
		assert.Equal(t, int64(1800), b.DiscountAmount.Cents())
		assert.Equal(t, int64(16200), b.FinalPrice.Cents())
	})
}
