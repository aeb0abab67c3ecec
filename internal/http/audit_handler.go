package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-pricing-service/internal/circuitbreaker"
	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/i18n"
	"github.com/guttosm/book-pricing-service/internal/service"
)

// AuditHandler serves the stored audit trail.
type AuditHandler struct {
	loggingService service.LoggingService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(loggingService service.LoggingService) *AuditHandler {
	return &AuditHandler{loggingService: loggingService}
}

// List handles GET /api/audit-logs requests.
//
// @Summary      List audit log entries
// @Description  Returns stored audit and access log entries, newest first. Only available when MongoDB logging is enabled.
// @Tags         Audit
// @Produce      json
// @Param        request_id  query string false "Filter by request ID"
// @Param        level       query string false "Filter by level" Enums(debug, info, warn, error)
// @Param        action_type query string false "Filter by action" Enums(quote, quote_rejected, http_request)
// @Param        subject     query string false "Filter by authenticated caller"
// @Param        limit       query int    false "Page size" default(50) minimum(1) maximum(500)
// @Param        skip        query int    false "Entries to skip" default(0) minimum(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.AuditLogsResponse} "Audit log page"
// @Failure      400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid credentials"
// @Failure      503 {object} dto.ErrorResponse "Log storage unavailable"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.AuditLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationQuery, err)
		return
	}

	ctx := c.Request.Context()
	opts := query.Options()

	entries, err := h.loggingService.QueryLogs(ctx, opts)
	if err != nil {
		h.storageError(builder, err)
		return
	}

	total, err := h.loggingService.CountLogs(ctx, opts)
	if err != nil {
		h.storageError(builder, err)
		return
	}

	builder.SuccessOK(i18n.SuccessKeyAuditLogs, dto.AuditLogsResponse{
		Items: entries,
		Total: total,
		Limit: query.Limit,
		Skip:  query.Skip,
	})
}

func (h *AuditHandler) storageError(builder *ResponseBuilder, err error) {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
