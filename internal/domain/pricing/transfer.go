package pricing

import (
	"github.com/google/uuid"
)

// TransferConfig is the pricing configuration snapshot for one
// route+vehicle-type scope. Surcharges are percentages of the leg base fare.
type TransferConfig struct {
	BasePrice            Money
	PeakSurchargePct     float64
	MidnightSurchargePct float64
	RoundTripEnabled     bool
	RoundTripDiscountPct float64
	Options              map[uuid.UUID]Option
}

type TransferCalculator struct{}

// Compute prices a transfer vehicle booking. Capacity-wise a transfer is one
// vehicle; the fare scales with legs, time-of-day surcharges and options,
// never with passenger count.
func (c *TransferCalculator) Compute(req Request, cfg TransferConfig, disc *Discount) (*Breakdown, error) {
	if err := req.validateCommon(); err != nil {
		return nil, err
	}
	tripType := req.TripType
	if tripType == "" {
		tripType = TripOneWay
	}
	if !tripType.IsValid() {
		return nil, ErrInvalidTripType
	}
	if tripType == TripRoundTrip && req.ReturnAt == nil {
		return nil, ErrMissingReturnLeg
	}

	legs := 1
	if tripType == TripRoundTrip {
		legs = 2
	}
	base := cfg.BasePrice.MulInt(legs)
	lines := []Line{{
		Label:     "vehicle",
		UnitPrice: cfg.BasePrice,
		Quantity:  legs,
		Amount:    base,
	}}

	subtotal := cfg.BasePrice
	var adjustments []Adjustment
	if surcharge, label := cfg.timeSurcharge(req.BookedFor.Hour()); !surcharge.IsZero() {
		adjustments = append(adjustments, Adjustment{Label: "outbound " + label, Amount: surcharge})
		subtotal = subtotal.Add(surcharge)
	}
	if tripType == TripRoundTrip {
		returnSubtotal := cfg.BasePrice
		if surcharge, label := cfg.timeSurcharge(req.ReturnAt.Hour()); !surcharge.IsZero() {
			adjustments = append(adjustments, Adjustment{Label: "return " + label, Amount: surcharge})
			returnSubtotal = returnSubtotal.Add(surcharge)
		}
		subtotal = subtotal.Add(returnSubtotal)
	}

	roundTripDiscount := Zero()
	if tripType == TripRoundTrip && cfg.RoundTripEnabled {
		roundTripDiscount = subtotal.Percent(cfg.RoundTripDiscountPct)
	}

	optsTotal, optLines, err := optionsTotal(req.Options, cfg.Options, base)
	if err != nil {
		return nil, err
	}
	lines = append(lines, optLines...)

	discountable := subtotal.Add(optsTotal).Sub(roundTripDiscount)
	discountAmount, err := applyDiscount(disc, discountable, req.QuotedAt)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		Currency:          req.Currency,
		Lines:             lines,
		Base:              base,
		Adjustments:       adjustments,
		OptionsTotal:      optsTotal,
		RoundTripDiscount: roundTripDiscount,
		DiscountAmount:    discountAmount,
		FinalPrice:        discountable.Sub(discountAmount),
	}, nil
}

// timeSurcharge maps a pickup hour to its surcharge. Peak windows are 7-9 and
// 17-19, the midnight window is 22-23 and 0-6, both bounds inclusive.
func (cfg TransferConfig) timeSurcharge(hour int) (Money, string) {
	switch {
	case (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19):
		return cfg.BasePrice.Percent(cfg.PeakSurchargePct), "peak hour surcharge"
	case hour >= 22 || hour <= 6:
		return cfg.BasePrice.Percent(cfg.MidnightSurchargePct), "midnight surcharge"
	default:
		return Zero(), ""
	}
}
