package pricing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTicketModifier = errors.New("ticket type modifier out of range")

// EventConfig is the pricing configuration snapshot for one
// performance+section+ticket-type scope. TicketTypeModifier is multiplicative
// and expressed as a fraction: a seat costs base_price x modifier.
type EventConfig struct {
	SectionBasePrice   Money
	TicketTypeModifier float64
	PerformanceAt      time.Time
	Rules              []Rule
	Fees               []Fee
	Options            map[uuid.UUID]Option
}

type EventCalculator struct{}

func (c *EventCalculator) Compute(req Request, cfg EventConfig, disc *Discount) (*Breakdown, error) {
	if err := req.validateCommon(); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if cfg.TicketTypeModifier < 0 {
		return nil, ErrInvalidTicketModifier
	}

	unit := cfg.SectionBasePrice.MulFactor(cfg.TicketTypeModifier)
	base := unit.MulInt(req.Quantity)
	lines := []Line{{
		Label:     "seat",
		UnitPrice: unit,
		Quantity:  req.Quantity,
		Amount:    base,
	}}

	ruled, adjustments, skipped := evaluateRules(cfg.Rules, cfg.PerformanceAt, base)

	optsTotal, optLines, err := optionsTotal(req.Options, cfg.Options, unit)
	if err != nil {
		return nil, err
	}
	lines = append(lines, optLines...)

	discountable := ruled.Add(optsTotal)
	discountAmount, err := applyDiscount(disc, discountable, req.QuotedAt)
	if err != nil {
		return nil, err
	}

	feeBase := discountable.Sub(discountAmount)
	feesTotal, feeAdjustments, feeIssues := evaluateFees(cfg.Fees, feeBase, req.Quantity)
	skipped = append(skipped, feeIssues...)

	taxable := feeBase.Add(feesTotal)
	tax := taxable.Percent(taxRatePct)

	return &Breakdown{
		Currency:       req.Currency,
		Lines:          lines,
		Base:           base,
		Adjustments:    adjustments,
		OptionsTotal:   optsTotal,
		DiscountAmount: discountAmount,
		Fees:           feeAdjustments,
		FeesTotal:      feesTotal,
		TaxAmount:      tax,
		FinalPrice:     taxable.Add(tax),
		SkippedRules:   skipped,
	}, nil
}
