//go:build unit

package pricing_test

import (
	"testing"

	"travel-booking/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestMoneyPercent(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		pct   float64
		want  int64
	}{
		{name: "ten percent of 200.00", cents: 20000, pct: 10, want: 2000},
		{name: "rounds half away from zero", cents: 1001, pct: 50, want: 501},
		{name: "rounds the half-cent tie up", cents: 30, pct: 15, want: 5},
		{name: "rounds the negative tie away from zero", cents: -30, pct: 15, want: -5},
		{name: "zero percent", cents: 20000, pct: 0, want: 0},
		{name: "hundred percent", cents: 12345, pct: 100, want: 12345},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.NewMoney(tc.cents).Percent(tc.pct)
			assert.Equal(t, tc.want, got.Cents())
		})
	}
}

func TestMoneyMulFactor(t *testing.T) {
	cases := []struct {
		name   string
		cents  int64
		factor float64
		want   int64
	}{
		{name: "identity", cents: 8000, factor: 1.0, want: 8000},
		{name: "fractional modifier", cents: 8000, factor: 1.2, want: 9600},
		{name: "half", cents: 999, factor: 0.5, want: 500},
		{name: "zero factor", cents: 8000, factor: 0, want: 0},
		{name: "factor snaps to basis points", cents: 1000000, factor: 0.00005, want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.NewMoney(tc.cents).MulFactor(tc.factor)
			assert.Equal(t, tc.want, got.Cents())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := pricing.NewMoney(1500)
	b := pricing.NewMoney(700)

	assert.Equal(t, int64(2200), a.Add(b).Cents())
	assert.Equal(t, int64(800), a.Sub(b).Cents())
	assert.Equal(t, int64(4500), a.MulInt(3).Cents())
	assert.Equal(t, int64(700), a.Min(b).Cents())
	assert.Equal(t, int64(700), b.Min(a).Cents())
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, b.Sub(a).IsNegative())
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "123.45", pricing.NewMoney(12345).String())
	assert.Equal(t, "-0.05", pricing.NewMoney(-5).String())
	assert.Equal(t, "0.00", pricing.Zero().String())
}

func TestNewNonNegativeMoney(t *testing.T) {
	_, err := pricing.NewNonNegativeMoney(-1)
	assert.ErrorIs(t, err, pricing.ErrNegativeAmount)

	m, err := pricing.NewNonNegativeMoney(0)
	assert.NoError(t, err)
	assert.True(t, m.IsZero())
}
