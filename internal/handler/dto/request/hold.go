package request

import (
	"strings"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"
	"travel-booking/internal/usecase"

	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	ProductType string    `json:"product_type" binding:"required,producttype"`
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ScopeID     string    `json:"scope_id" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
	OwnerRef    string    `json:"owner_ref" binding:"required"`
}

func (r CreateHoldRequest) ToParams() (usecase.CreateHoldParams, error) {
	scope, err := capacity.NewScope(product.Type(r.ProductType), r.ProductID, r.ScopeID)
	if err != nil {
		return usecase.CreateHoldParams{}, err
	}
	return usecase.CreateHoldParams{
		Scope:    scope,
		Quantity: r.Quantity,
		OwnerRef: strings.TrimSpace(r.OwnerRef),
	}, nil
}

// UpdateHoldRequest renews a hold, and resizes it when a quantity is given.
type UpdateHoldRequest struct {
	Quantity *int `json:"quantity,omitempty" binding:"omitempty,min=1"`
}
