package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	"personal-task-management/internal/model"
	pkgErrors "personal-task-management/pkg/errors"
)

func (h *handler) scope(c *gin.Context) (model.Scope, error) {
	sc, ok := middleware.GetScope(c)
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

// processUpdateReq binds and validates the update profile request body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, pkgErrors.NewBadRequestError(err.Error())
	}
	return req, sc, nil
}
