// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CRUDRouteHandler defines the interface for entity handlers with the
// standard list/get/create/update/delete endpoints.
type CRUDRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RegisterCRUDRoutes registers the standard routes for an entity.
// Updates are partial, hence PATCH.
//
// Usage:
//
//	handler := handlers.NewSupplierHandler(baseHandler, cfg.Ledger)
//	RegisterCRUDRoutes(api.Group("/suppliers"), handler)
func RegisterCRUDRoutes(group *gin.RouterGroup, handler CRUDRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PATCH("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
}
