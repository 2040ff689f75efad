package response

import "github.com/google/uuid"

type AvailabilityResponse struct {
	ProductType string    `json:"productType"`
	ProductID   uuid.UUID `json:"productId"`
	ScopeID     string    `json:"scopeId"`
	Available   int       `json:"available"`
}
