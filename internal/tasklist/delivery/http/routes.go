package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps /task-lists to the handler. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	lists := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		lists.GET("", h.List)
		lists.POST("", h.Create)
		lists.GET("/:id", h.Detail)
		lists.PUT("/:id", h.Update)
		lists.DELETE("/:id", h.Delete)
	}
}
