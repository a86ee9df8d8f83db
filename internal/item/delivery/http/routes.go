package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods under rg/items.
// PUT and PATCH share the same partial update semantics.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	items := rg.Group("/items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.PATCH("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
