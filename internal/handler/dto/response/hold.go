package response

import (
	"time"

	"travel-booking/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HoldResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProductType string     `json:"productType"`
	ProductID   uuid.UUID  `json:"productId"`
	ScopeID     string     `json:"scopeId"`
	Quantity    int        `json:"quantity"`
	OwnerRef    string     `json:"ownerRef"`
	Status      string     `json:"status"`
	BookingRef  *uuid.UUID `json:"bookingRef,omitempty"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromHoldRM(rm *readmodel.HoldRM) (*HoldResponse, error) {
	var resp HoldResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
