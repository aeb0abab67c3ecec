package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

var (
	_ RouteGroup = (*PricingRoutes)(nil)
	_ RouteGroup = (*AuditRoutes)(nil)
)
