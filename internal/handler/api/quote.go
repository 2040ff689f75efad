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

type QuoteHandler struct {
	quotes usecase.QuoteUseCase
}

func NewQuoteHandler(quotes usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid capacity scope", nil)
		return
	}

	breakdown, err := h.quotes.Quote(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPricingConfigNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Pricing configuration not found", nil)
		case errors.Is(err, usecase.ErrInvalidDiscountCode):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid or expired discount code", nil)
		case errors.Is(err, usecase.ErrQuoteValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
