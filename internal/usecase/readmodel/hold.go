package readmodel

import (
	"time"

	"travel-booking/internal/domain/hold"

	"github.com/google/uuid"
)

// HoldRM is the flat view of a hold handed to the transport layer.
type HoldRM struct {
	ID          uuid.UUID
	ProductType string
	ProductID   uuid.UUID
	ScopeID     string
	Quantity    int
	OwnerRef    string
	Status      string
	BookingRef  *uuid.UUID
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

func NewHoldRM(h *hold.Hold) *HoldRM {
	return &HoldRM{
		ID:          h.ID(),
		ProductType: h.Scope().ProductType().String(),
		ProductID:   h.Scope().ProductID(),
		ScopeID:     h.Scope().ScopeID(),
		Quantity:    h.Quantity(),
		OwnerRef:    h.OwnerRef(),
		Status:      h.Status().String(),
		BookingRef:  h.BookingRef(),
		ExpiresAt:   h.ExpiresAt(),
		CreatedAt:   h.CreatedAt(),
	}
}
