package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/pkg/response"
)

// Detail godoc
// @Summary     Get the caller's profile
// @Description Returns the saved profile, or the defaults when the caller has not saved one.
// @Tags        Profile
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {object} itemResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.scope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newItemResp(output.Profile))
}

// Update godoc
// @Summary     Update the caller's profile
// @Description Partial update. Omitted fields keep their value. An empty time_zone falls back to the server timezone.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Caller id"
// @Param       body      body   updateReq true "Fields to change"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [PUT]
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

	response.OK(c, h.newItemResp(output.Profile))
}
