package api

import (
	"errors"
	"net/http"

	"travel-booking/internal/domain/hold"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase"
	"travel-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HoldHandler struct {
	reservations usecase.ReservationManager
}

func NewHoldHandler(reservations usecase.ReservationManager) *HoldHandler {
	return &HoldHandler{reservations: reservations}
}

func (h *HoldHandler) CreateHold(c *gin.Context) {
	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity scope", nil)
		return
	}

	created, err := h.reservations.CreateHold(c.Request.Context(), params)
	if err != nil {
		h.writeHoldError(c, err)
		return
	}
	h.writeHold(c, http.StatusCreated, created)
}

func (h *HoldHandler) GetHold(c *gin.Context) {
	id, ok := h.holdID(c)
	if !ok {
		return
	}

	found, err := h.reservations.GetHold(c.Request.Context(), id)
	if err != nil {
		h.writeHoldError(c, err)
		return
	}
	h.writeHold(c, http.StatusOK, found)
}

// UpdateHold renews the hold; with a quantity in the body it resizes too.
func (h *HoldHandler) UpdateHold(c *gin.Context) {
	id, ok := h.holdID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var (
		updated *hold.Hold
		err     error
	)
	if req.Quantity != nil {
		updated, err = h.reservations.ResizeHold(c.Request.Context(), id, *req.Quantity, 0)
	} else {
		updated, err = h.reservations.RenewHold(c.Request.Context(), id, 0)
	}
	if err != nil {
		h.writeHoldError(c, err)
		return
	}
	h.writeHold(c, http.StatusOK, updated)
}

func (h *HoldHandler) ReleaseHold(c *gin.Context) {
	id, ok := h.holdID(c)
	if !ok {
		return
	}

	if err := h.reservations.ReleaseHold(c.Request.Context(), id); err != nil {
		h.writeHoldError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HoldHandler) writeHold(c *gin.Context, status int, entity *hold.Hold) {
	resp, err := resdto.FromHoldRM(readmodel.NewHoldRM(entity))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render hold", nil)
		return
	}
	c.JSON(status, resp)
}

func (h *HoldHandler) holdID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *HoldHandler) writeHoldError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrHoldNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Hold not found", nil)
	case errors.Is(err, usecase.ErrHoldExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Hold has expired", nil)
	case errors.Is(err, usecase.ErrHoldNotActive):
		httperr.AbortWithError(c, http.StatusConflict, err, "Hold is no longer active", nil)
	case errors.Is(err, usecase.ErrHoldNotResizable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Hold quantity is fixed for this product type", nil)
	case errors.Is(err, usecase.ErrHoldQuantity), errors.Is(err, usecase.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid hold quantity", nil)
	case errors.Is(err, usecase.ErrCapacityUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient capacity", nil)
	case errors.Is(err, usecase.ErrPoolNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Capacity pool not found", nil)
	case errors.Is(err, usecase.ErrLockTimeout):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Capacity scope busy, retry later", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
