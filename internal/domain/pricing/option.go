package pricing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownOption   = errors.New("unknown option")
	ErrMalformedOption = errors.New("malformed option configuration")
)

// Option is a bookable add-on. Tours and events use fixed-price options;
// transfer options may also be configured as a percentage of the base fare.
type Option struct {
	ID      uuid.UUID
	Name    string
	Kind    CalcKind
	Price   Money
	Percent float64
}

func (o Option) amount(base Money, qty int) (Money, error) {
	switch o.Kind {
	case CalcFixed:
		if o.Price.IsNegative() {
			return Zero(), ErrMalformedOption
		}
		return o.Price.MulInt(qty), nil
	case CalcPercentage:
		if o.Percent < 0 || o.Percent > 100 {
			return Zero(), ErrMalformedOption
		}
		return base.Percent(o.Percent).MulInt(qty), nil
	default:
		return Zero(), ErrMalformedOption
	}
}

// optionsTotal resolves every selection against the configured options and
// sums their amounts. Percentage options are taken against base.
func optionsTotal(selections []OptionSelection, options map[uuid.UUID]Option, base Money) (Money, []Line, error) {
	total := Zero()
	lines := make([]Line, 0, len(selections))
	for _, sel := range selections {
		opt, ok := options[sel.OptionID]
		if !ok {
			return Zero(), nil, ErrUnknownOption
		}
		amount, err := opt.amount(base, sel.Quantity)
		if err != nil {
			return Zero(), nil, err
		}
		unit := opt.Price
		if opt.Kind == CalcPercentage {
			unit = base.Percent(opt.Percent)
		}
		lines = append(lines, Line{
			Label:     opt.Name,
			UnitPrice: unit,
			Quantity:  sel.Quantity,
			Amount:    amount,
		})
		total = total.Add(amount)
	}
	return total, lines, nil
}
