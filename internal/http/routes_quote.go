package http

import (
	"github.com/gin-gonic/gin"
)

// PricingRoutes registers the cart pricing endpoints.
type PricingRoutes struct {
	handler *Handler
}

// NewPricingRoutes creates a new PricingRoutes instance.
func NewPricingRoutes(handler *Handler) *PricingRoutes {
	return &PricingRoutes{handler: handler}
}

// RegisterRoutes registers POST /quote and GET /discounts.
func (r *PricingRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quote", r.handler.Quote)
	rg.GET("/discounts", r.handler.Discounts)
}

// AuditRoutes registers the audit log endpoint.
type AuditRoutes struct {
	handler *AuditHandler
}

// NewAuditRoutes creates a new AuditRoutes instance.
func NewAuditRoutes(handler *AuditHandler) *AuditRoutes {
	return &AuditRoutes{handler: handler}
}

// RegisterRoutes registers GET /audit-logs.
func (r *AuditRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit-logs", r.handler.List)
}
