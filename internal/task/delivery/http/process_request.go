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

// processCreateReq binds the create task body; the list comes from the URI.
func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	var req createReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, pkgErrors.NewBadRequestError(err.Error())
	}
	req.TaskListID = c.Param("id")
	return req, sc, req.validate()
}

// processUpdateReq binds the partial update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	var req updateReq
	sc, err := h.scope(c)
	if err != nil {
		return req, sc, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, pkgErrors.NewBadRequestError(err.Error())
	}
	req.ID = c.Param("id")
	return req, sc, req.validate()
}
