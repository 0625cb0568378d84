package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps the task endpoints under rg (the /api/v1 group).
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	byList := rg.Group("/task-lists/:id/tasks", mw.Auth(), mw.RateLimit())
	{
		byList.GET("", h.List)
		byList.POST("", h.Create)
	}

	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.DeleteCascade)
		tasks.POST("/:id/delete-keep-children", h.DeleteKeepChildren)
	}
}
