package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/pkg/response"
)

// List godoc
// @Summary     List task lists
// @Description Returns the caller's lists and folders as a tree. Archived lists are hidden unless requested.
// @Tags        TaskLists
// @Produce     json
// @Param       X-User-ID        header string true  "Caller id"
// @Param       include_archived query  bool   false "Include archived lists"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/task-lists [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task list or folder
// @Tags        TaskLists
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       body      body   createReq true "List data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/task-lists [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemResp(output.List))
}

// Detail godoc
// @Summary     Get a task list
// @Tags        TaskLists
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "List ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/task-lists/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.List))
}

// Update godoc
// @Summary     Update a task list
// @Description Partial update. parent_id: absent keeps the parent, null moves the list to the root.
// @Tags        TaskLists
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       id        path   string    true "List ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Circular folder reference"
// @Router      /api/v1/task-lists/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.List))
}

// Delete godoc
// @Summary     Delete a task list
// @Description Deletes the list with all its tasks. Lists inside a deleted folder move to the root.
// @Tags        TaskLists
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "List ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/task-lists/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
