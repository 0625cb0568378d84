package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps /profile to the handler. Every route requires Auth.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	p := rg.Group("", mw.Auth(), mw.RateLimit())
	{
		p.GET("", h.Detail)
		p.PUT("", h.Update)
	}
}
