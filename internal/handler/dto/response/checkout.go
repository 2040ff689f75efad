package response

import (
	"travel-booking/internal/usecase"

	"github.com/google/uuid"
)

type BookingResponse struct {
	HoldID      uuid.UUID `json:"holdId"`
	BookingRef  uuid.UUID `json:"bookingRef"`
	ProductType string    `json:"productType"`
	ProductID   uuid.UUID `json:"productId"`
	ScopeID     string    `json:"scopeId"`
	Quantity    int       `json:"quantity"`
	OwnerRef    string    `json:"ownerRef"`
}

type CheckoutResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func FromCheckoutResult(result *usecase.CheckoutResult) *CheckoutResponse {
	bookings := make([]BookingResponse, len(result.Bookings))
	for i, b := range result.Bookings {
		bookings[i] = BookingResponse{
			HoldID:      b.HoldID,
			BookingRef:  b.BookingRef,
			ProductType: b.Scope.ProductType().String(),
			ProductID:   b.Scope.ProductID(),
			ScopeID:     b.Scope.ScopeID(),
			Quantity:    b.Quantity,
			OwnerRef:    b.OwnerRef,
		}
	}
	return &CheckoutResponse{Bookings: bookings}
}
