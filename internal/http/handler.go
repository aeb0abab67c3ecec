package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/i18n"
	"github.com/guttosm/book-pricing-service/internal/middleware"
	"github.com/guttosm/book-pricing-service/internal/service"
)

// Handler provides HTTP handlers for the pricing routes.
type Handler struct {
	calculator  service.PriceCalculator
	auditLogger *middleware.AsyncLogger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithAuditLogger records every quote through al.
func WithAuditLogger(al *middleware.AsyncLogger) HandlerOption {
	return func(h *Handler) {
		h.auditLogger = al
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.PriceCalculator, opts ...HandlerOption) *Handler {
	registerValidators()

	h := &Handler{calculator: calculator}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Quote handles POST /api/quote requests.
//
// @Summary      Price a cart of books
// @Description  Builds a cart by adding one copy per entry of books, in order, and prices it. Copies of different titles are grouped greedily into sets of distinct titles; a set of 2, 3, 4 or 5 titles gets 5%, 10%, 20% or 25% off. Supports idempotency via Idempotency-Key header.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.QuoteRequest true "Books in the cart, one entry per copy"
// @Success      200 {object} dto.SuccessResponse{data=model.PriceQuote} "Priced cart"
// @Failure      400 {object} dto.ErrorResponse "Invalid cart"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      409 {object} dto.ErrorResponse "Same idempotency key already in progress"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if verr := quoteValidationError(err); verr != nil {
			h.reject(c, builder, verr, len(req.Books))
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			h.reject(c, builder, verr, len(req.Books))
			return
		}
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	quote := h.calculator.CalculateTitles(c.Request.Context(), req.Books)

	middleware.AuditLog(h.auditLogger, c, model.ActionQuote, "Cart priced", map[string]interface{}{
		"total_books":     quote.TotalBooks,
		"distinct_titles": quote.DistinctTitles,
		"total":           quote.Total,
		"savings":         quote.Savings,
	})

	builder.SuccessOK(i18n.SuccessKeyQuoteCalculated, quote)
}

func (h *Handler) reject(c *gin.Context, builder *ResponseBuilder, verr *dto.ValidationError, books int) {
	middleware.AuditLogError(h.auditLogger, c, model.ActionQuoteRejected, "Cart rejected", verr, map[string]interface{}{
		"books": books,
	})
	builder.ValidationError(verr)
}

// Discounts handles GET /api/discounts requests.
//
// @Summary      Discount table
// @Description  Lists the discount and price of a single group for every group size from 1 to 5 distinct titles.
// @Tags         Pricing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.BookGroup} "Discount table"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/discounts [get]
func (h *Handler) Discounts(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(i18n.SuccessKeyDiscountTable, h.calculator.DiscountTable())
}
