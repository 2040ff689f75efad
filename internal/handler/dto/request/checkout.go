package request

import (
	"strings"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"
	"travel-booking/internal/usecase"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	HoldIDs      []uuid.UUID `json:"hold_ids" binding:"required,min=1"`
	DiscountCode *string     `json:"discount_code,omitempty"`
}

func (r CheckoutRequest) ToParams() usecase.CheckoutParams {
	var code *string
	if r.DiscountCode != nil {
		trimmed := strings.TrimSpace(*r.DiscountCode)
		if trimmed != "" {
			code = &trimmed
		}
	}
	return usecase.CheckoutParams{
		HoldIDs:      r.HoldIDs,
		DiscountCode: code,
	}
}

type CancelBookingRequest struct {
	ProductType string    `json:"product_type" binding:"required,producttype"`
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ScopeID     string    `json:"scope_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
}

func (r CancelBookingRequest) ToScope() (capacity.Scope, error) {
	return capacity.NewScope(product.Type(r.ProductType), r.ProductID, r.ScopeID)
}
