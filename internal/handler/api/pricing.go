package api

import (
	"net/http"

	reqdto "hotel-storefront/internal/handler/dto/request"
	resdto "hotel-storefront/internal/handler/dto/response"
	"hotel-storefront/internal/handler/httperr"
	"hotel-storefront/internal/pkg/errs"
	"hotel-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Coupon prices
// @Description Public coupon purchase prices from the site settings
// @Tags pricing
// @Produce json
// @Success 200 {object} resdto.CouponPricesResponse
// @Failure 503 {object} map[string]string
// @Router /pricing/settings [get]
func (h *PricingHandler) Settings(c *gin.Context) {
	view, err := h.q.CouponPrices(c.Request.Context())
	if err != nil {
		h.abort(c, err)
		return
	}
	res, err := resdto.FromCouponPricesView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote room price
// @Description Price a room with margin, VAT and platform fee, optionally with a coupon
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), queries.QuoteInput{
		RoomPrice:  *req.RoomPrice,
		CouponType: req.CouponType,
	})
	if err != nil {
		h.abort(c, err)
		return
	}
	res, err := resdto.FromQuoteView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *PricingHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrInvalidCouponType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown coupon type", nil)
	case errs.Is(err, queries.ErrSettingsUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Pricing is temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
