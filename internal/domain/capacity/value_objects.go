package capacity

import (
	"errors"
	"fmt"

	"travel-booking/internal/domain/product"

	"github.com/google/uuid"
)

var ErrInvalidScope = errors.New("invalid capacity scope")

// Scope is the finest-grained unit capacity is tracked against. The scope ID
// encodes the product-specific sub-allocation: schedule+variant for tours,
// performance+section+ticket-type for events, route+vehicle-type for
// transfers.
type Scope struct {
	productType product.Type
	productID   uuid.UUID
	scopeID     string
}

func NewScope(productType product.Type, productID uuid.UUID, scopeID string) (Scope, error) {
	if !productType.IsValid() {
		return Scope{}, ErrInvalidScope
	}
	if productID == uuid.Nil || scopeID == "" {
		return Scope{}, ErrInvalidScope
	}
	return Scope{
		productType: productType,
		productID:   productID,
		scopeID:     scopeID,
	}, nil
}

func (s Scope) ProductType() product.Type { return s.productType }
func (s Scope) ProductID() uuid.UUID      { return s.productID }
func (s Scope) ScopeID() string           { return s.scopeID }

func (s Scope) IsZero() bool {
	return s.productID == uuid.Nil
}

// Key returns a stable string identity used for per-scope lock keying.
func (s Scope) Key() string {
	return fmt.Sprintf("%s/%s/%s", s.productType, s.productID, s.scopeID)
}
