package pricing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var ErrInvalidAgeFactor = errors.New("age group factor out of range")

// taxRatePct applies to tour and event quotes, after discounts.
const taxRatePct = 10.0

const (
	minAgeFactor = 0.0
	maxAgeFactor = 2.0
)

// TourConfig is the pricing configuration snapshot for one schedule+variant
// scope.
type TourConfig struct {
	BasePrice  Money
	AgeFactors map[AgeGroup]float64
	Options    map[uuid.UUID]Option
}

type TourCalculator struct{}

// Compute prices a tour participant breakdown. Every age group contributes
// base_price x factor per participant; infants always contribute zero, an
// explicit business override that wins over any configured factor.
func (c *TourCalculator) Compute(req Request, cfg TourConfig, disc *Discount) (*Breakdown, error) {
	if err := req.validateCommon(); err != nil {
		return nil, err
	}
	if len(req.Participants) == 0 {
		return nil, ErrNoParticipants
	}

	subtotal := Zero()
	lines := make([]Line, 0, len(req.Participants))
	for _, group := range sortedGroups(req.Participants) {
		count := req.Participants[group]
		if count <= 0 {
			return nil, ErrInvalidQuantity
		}
		unit, err := cfg.unitPrice(group)
		if err != nil {
			return nil, err
		}
		amount := unit.MulInt(count)
		lines = append(lines, Line{
			Label:     string(group),
			UnitPrice: unit,
			Quantity:  count,
			Amount:    amount,
		})
		subtotal = subtotal.Add(amount)
	}

	optsTotal, optLines, err := optionsTotal(req.Options, cfg.Options, cfg.BasePrice)
	if err != nil {
		return nil, err
	}
	lines = append(lines, optLines...)

	discountable := subtotal.Add(optsTotal)
	discountAmount, err := applyDiscount(disc, discountable, req.QuotedAt)
	if err != nil {
		return nil, err
	}

	taxable := discountable.Sub(discountAmount)
	tax := taxable.Percent(taxRatePct)

	return &Breakdown{
		Currency:       req.Currency,
		Lines:          lines,
		Base:           subtotal,
		OptionsTotal:   optsTotal,
		DiscountAmount: discountAmount,
		TaxAmount:      tax,
		FinalPrice:     taxable.Add(tax),
	}, nil
}

func (cfg TourConfig) unitPrice(group AgeGroup) (Money, error) {
	if group == AgeGroupInfant {
		return Zero(), nil
	}
	factor, ok := cfg.AgeFactors[group]
	if !ok {
		factor = 1.0
	}
	if factor < minAgeFactor || factor > maxAgeFactor {
		return Zero(), fmt.Errorf("%w: %s=%v", ErrInvalidAgeFactor, group, factor)
	}
	return cfg.BasePrice.MulFactor(factor), nil
}

func sortedGroups(participants map[AgeGroup]int) []AgeGroup {
	groups := make([]AgeGroup, 0, len(participants))
	for g := range participants {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
	return groups
}
