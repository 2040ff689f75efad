package pricing

import (
	"errors"
	"time"

	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductType = errors.New("invalid product type")
	ErrNoParticipants     = errors.New("participant breakdown required")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidTripType    = errors.New("invalid trip type")
	ErrMissingReturnLeg   = errors.New("round trip requires a return time")
)

// OptionSelection is one selected add-on and how many of it.
type OptionSelection struct {
	OptionID uuid.UUID
	Quantity int
}

// Request is the input value for one price computation. QuotedAt anchors
// discount validity; BookedFor is the travel/performance time that drives
// time-based surcharges.
type Request struct {
	ProductType  product.Type
	Currency     string
	QuotedAt     time.Time
	BookedFor    time.Time
	ReturnAt     *time.Time
	TripType     TripType
	Quantity     int
	Participants map[AgeGroup]int
	Options      []OptionSelection
	DiscountCode string
}

// Units is the participant/seat count fees scale against. Transfers count
// one unit per vehicle leg regardless of passengers.
func (r Request) Units() int {
	switch r.ProductType {
	case product.TypeTour:
		total := 0
		for _, n := range r.Participants {
			total += n
		}
		return total
	case product.TypeEvent:
		return r.Quantity
	case product.TypeTransfer:
		if r.TripType == TripRoundTrip {
			return 2
		}
		return 1
	default:
		return 0
	}
}

func (r Request) validateCommon() error {
	if !r.ProductType.IsValid() {
		return ErrInvalidProductType
	}
	for _, sel := range r.Options {
		if sel.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
