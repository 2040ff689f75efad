package request

import (
	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
)

type CreatePoolRequest struct {
	ProductType string    `json:"product_type" binding:"required,producttype"`
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ScopeID     string    `json:"scope_id" binding:"required"`
	Total       int       `json:"total" binding:"min=0"`
}

func (r CreatePoolRequest) ToScope() (capacity.Scope, error) {
	return capacity.NewScope(product.Type(r.ProductType), r.ProductID, r.ScopeID)
}

type AdjustCapacityRequest struct {
	ProductType string    `json:"product_type" binding:"required,producttype"`
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	ScopeID     string    `json:"scope_id" binding:"required"`
	Total       int       `json:"total" binding:"min=0"`
}

func (r AdjustCapacityRequest) ToScope() (capacity.Scope, error) {
	return capacity.NewScope(product.Type(r.ProductType), r.ProductID, r.ScopeID)
}

// AvailabilityQuery binds the query string of the availability endpoint. The
// product id stays a string here; the handler parses it to keep the 400
// response wording consistent with the path-param case.
type AvailabilityQuery struct {
	ProductType string `form:"product_type" binding:"required,producttype"`
	ProductID   string `form:"product_id" binding:"required,uuid"`
	ScopeID     string `form:"scope_id" binding:"required"`
}
