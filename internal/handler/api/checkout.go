package api

import (
	"errors"
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkouts usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkouts usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{checkouts: checkouts}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkouts.Checkout(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCheckoutEmpty):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Checkout requires at least one hold", nil)
		case errors.Is(err, usecase.ErrHoldNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hold not found", nil)
		case errors.Is(err, usecase.ErrHoldExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Hold has expired", nil)
		case errors.Is(err, usecase.ErrHoldNotActive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Hold is no longer active", nil)
		case errors.Is(err, usecase.ErrLockTimeout):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Capacity scope busy, retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}

// CancelBooking gives sold capacity back after the external order service
// cancels a finalized booking.
func (h *CheckoutHandler) CancelBooking(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	scope, err := req.ToScope()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity scope", nil)
		return
	}

	if err := h.checkouts.CancelBooking(c.Request.Context(), scope, req.Quantity); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPoolNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Capacity pool not found", nil)
		case errors.Is(err, usecase.ErrInvalidArgument), errors.Is(err, usecase.ErrCapacityInvariant):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cancellation exceeds sold capacity", nil)
		case errors.Is(err, usecase.ErrLockTimeout):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Capacity scope busy, retry later", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
