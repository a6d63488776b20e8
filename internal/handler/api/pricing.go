package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
	resdto "github.com/d3coo/car-rental-backend/internal/handler/dto/response"
	"github.com/d3coo/car-rental-backend/internal/handler/httperr"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type PricingHandler struct {
	pricingUseCase usecase.PricingUseCase
}

func NewPricingHandler(pricingUseCase usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{pricingUseCase: pricingUseCase}
}

// @Summary Quote a booking
// @Description Prices a prospective booking without creating it.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.BookingQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/booking [post]
func (h *PricingHandler) QuoteBooking(c *gin.Context) {
	var req reqdto.BookingQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking unit", nil)
		return
	}

	quote, err := h.pricingUseCase.QuoteBooking(c.Request.Context(), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBreakdown(quote.Breakdown))
}

// @Summary Quote a contract extension
// @Description Prices an extension given current and new end dates.
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ExtensionQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/extension [post]
func (h *PricingHandler) QuoteExtension(c *gin.Context) {
	var req reqdto.ExtensionQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking unit", nil)
		return
	}

	quote, err := h.pricingUseCase.QuoteExtension(c.Request.Context(), in)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBreakdown(quote.Breakdown))
}
