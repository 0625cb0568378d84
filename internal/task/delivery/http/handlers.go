package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/pkg/response"
)

// List godoc
// @Summary     List tasks of a list
// @Description Returns the list's tasks flat (parents first) and as a nested tree.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "List ID"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "List not found"
// @Router      /api/v1/task-lists/{id}/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Adds a task to the list, optionally under a parent task of the same list.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       id        path   string    true "List ID"
// @Param       body      body   createReq true "Task data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request / list is a folder"
// @Failure     404 {object} response.Resp "List or parent not found"
// @Failure     422 {object} response.Resp "Invalid field value"
// @Router      /api/v1/task-lists/{id}/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newItemResp(output.Task))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
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

	response.OK(c, h.newItemResp(output.Task))
}

// Update godoc
// @Summary     Update or reparent a task
// @Description Partial update. parent_id: absent keeps the parent, null makes the task a root.
// @Description task_list_id moves the task and its subtree to another list. level is stored as given.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       id        path   string    true "Task ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Invalid parent"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Circular reference"
// @Failure     422 {object} response.Resp "Invalid field value"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Task))
}

// DeleteCascade godoc
// @Summary     Delete a task and its subtasks
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteCascade(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteCascade(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteCascade: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// DeleteKeepChildren godoc
// @Summary     Delete a task, keeping its subtasks
// @Description Direct subtasks move up to the deleted task's parent.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/delete-keep-children [POST]
func (h *handler) DeleteKeepChildren(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.DeleteKeepChildren(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.DeleteKeepChildren: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
