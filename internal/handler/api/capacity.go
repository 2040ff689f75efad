package api

import (
	"errors"
	"net/http"

	"travel-booking/internal/domain/capacity"
	"travel-booking/internal/domain/product"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CapacityHandler struct {
	ledger usecase.CapacityLedger
}

func NewCapacityHandler(ledger usecase.CapacityLedger) *CapacityHandler {
	return &CapacityHandler{ledger: ledger}
}

func (h *CapacityHandler) GetAvailability(c *gin.Context) {
	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid availability query", nil)
		return
	}

	productID, err := uuid.Parse(query.ProductID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
		return
	}

	scope, err := capacity.NewScope(product.Type(query.ProductType), productID, query.ScopeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity scope", nil)
		return
	}

	available, err := h.ledger.GetAvailable(c.Request.Context(), scope)
	if err != nil {
		h.writeLedgerError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		ProductType: query.ProductType,
		ProductID:   productID,
		ScopeID:     query.ScopeID,
		Available:   available,
	})
}

func (h *CapacityHandler) CreatePool(c *gin.Context) {
	var req reqdto.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	scope, err := req.ToScope()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity scope", nil)
		return
	}

	if err := h.ledger.CreatePool(c.Request.Context(), scope, req.Total); err != nil {
		if errors.Is(err, usecase.ErrPoolAlreadyExists) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Capacity pool already exists", nil)
			return
		}
		h.writeLedgerError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *CapacityHandler) AdjustTotal(c *gin.Context) {
	var req reqdto.AdjustCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	scope, err := req.ToScope()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity scope", nil)
		return
	}

	if err := h.ledger.AdjustTotal(c.Request.Context(), scope, req.Total); err != nil {
		if errors.Is(err, usecase.ErrCapacityBelowCommitted) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Total below committed units", nil)
			return
		}
		h.writeLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CapacityHandler) writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPoolNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Capacity pool not found", nil)
	case errors.Is(err, usecase.ErrInvalidArgument):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity request", nil)
	case errors.Is(err, usecase.ErrLockTimeout):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Capacity scope busy, retry later", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
