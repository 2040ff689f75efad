package pricing

import (
	"errors"
	"fmt"
	"math"
)

var ErrNegativeAmount = errors.New("money amount cannot be negative")

// Money is a fixed-point amount in minor units (cents). All monetary
// arithmetic stays on int64; factors are snapped to basis points before they
// touch an amount, so chained operations never accumulate binary rounding
// error.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

func (m Money) MulInt(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// MulFactor scales the amount by a factor. The factor is snapped to basis
// points and the product computed in integer arithmetic, rounding half away
// from zero.
func (m Money) MulFactor(f float64) Money {
	return m.mulBasisPoints(int64(math.Round(f * 10000)))
}

// Percent returns p percent of the amount (p = 10 means 10%).
func (m Money) Percent(p float64) Money {
	return m.mulBasisPoints(int64(math.Round(p * 100)))
}

func (m Money) mulBasisPoints(bp int64) Money {
	product := m.cents * bp
	if product >= 0 {
		return Money{cents: (product + 5000) / 10000}
	}
	return Money{cents: (product - 5000) / 10000}
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// Equal makes Money comparable with go-cmp without exposing its field.
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
