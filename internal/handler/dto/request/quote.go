package request

import (
	"strings"
	"time"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/pricing"
	"travel-booking/internal/domain/product"
	"travel-booking/internal/usecase"

	"github.com/google/uuid"
)

type OptionSelectionRequest struct {
	OptionID uuid.UUID `json:"option_id" binding:"required"`
	Quantity int       `json:"quantity" binding:"required,min=1"`
}

type QuoteRequest struct {
	ProductType  string                   `json:"product_type" binding:"required,producttype"`
	ProductID    uuid.UUID                `json:"product_id" binding:"required"`
	ScopeID      string                   `json:"scope_id" binding:"required"`
	Currency     string                   `json:"currency" binding:"required,len=3"`
	BookedFor    time.Time                `json:"booked_for" binding:"required"`
	ReturnAt     *time.Time               `json:"return_at,omitempty"`
	TripType     *string                  `json:"trip_type,omitempty" binding:"omitempty,oneof=one_way round_trip"`
	Quantity     int                      `json:"quantity,omitempty" binding:"omitempty,min=1"`
	Participants map[string]int           `json:"participants,omitempty"`
	Options      []OptionSelectionRequest `json:"options,omitempty"`
	DiscountCode *string                  `json:"discount_code,omitempty"`
}

func (r QuoteRequest) GetDiscountCode() *string {
	if r.DiscountCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.DiscountCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r QuoteRequest) ToParams() (usecase.QuoteParams, error) {
	scope, err := capacity.NewScope(product.Type(r.ProductType), r.ProductID, r.ScopeID)
	if err != nil {
		return usecase.QuoteParams{}, err
	}

	tripType := pricing.TripOneWay
	if r.TripType != nil {
		tripType = pricing.TripType(*r.TripType)
	}

	var participants map[pricing.AgeGroup]int
	if len(r.Participants) > 0 {
		participants = make(map[pricing.AgeGroup]int, len(r.Participants))
		for group, n := range r.Participants {
			participants[pricing.AgeGroup(group)] = n
		}
	}

	options := make([]pricing.OptionSelection, len(r.Options))
	for i, sel := range r.Options {
		options[i] = pricing.OptionSelection{OptionID: sel.OptionID, Quantity: sel.Quantity}
	}

	return usecase.QuoteParams{
		Scope:        scope,
		Currency:     strings.ToUpper(r.Currency),
		BookedFor:    r.BookedFor,
		ReturnAt:     r.ReturnAt,
		TripType:     tripType,
		Quantity:     r.Quantity,
		Participants: participants,
		Options:      options,
		DiscountCode: r.GetDiscountCode(),
	}, nil
}
