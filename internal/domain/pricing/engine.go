package pricing

import (
	"errors"

	"travel-booking/internal/domain/product"
)

var ErrConfigMismatch = errors.New("pricing config does not match product type")

// Config is the closed set of per-product pricing configurations. Exactly
// three variants exist; a fourth product type cannot be wired in without a
// compile-time change here and in the engine dispatch.
type Config interface {
	isConfig()
}

func (TourConfig) isConfig()     {}
func (EventConfig) isConfig()    {}
func (TransferConfig) isConfig() {}

// Engine dispatches a pricing request to the calculator for its product
// type. Computation is pure: same request, config and discount always yield
// the same breakdown.
type Engine struct {
	tour     TourCalculator
	event    EventCalculator
	transfer TransferCalculator
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Compute(req Request, cfg Config, disc *Discount) (*Breakdown, error) {
	switch c := cfg.(type) {
	case TourConfig:
		if req.ProductType != product.TypeTour {
			return nil, ErrConfigMismatch
		}
		return e.tour.Compute(req, c, disc)
	case EventConfig:
		if req.ProductType != product.TypeEvent {
			return nil, ErrConfigMismatch
		}
		return e.event.Compute(req, c, disc)
	case TransferConfig:
		if req.ProductType != product.TypeTransfer {
			return nil, ErrConfigMismatch
		}
		return e.transfer.Compute(req, c, disc)
	default:
		return nil, ErrConfigMismatch
	}
}
