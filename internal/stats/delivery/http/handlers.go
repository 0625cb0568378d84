package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	"personal-task-management/internal/stats"
	pkgErrors "personal-task-management/pkg/errors"
	"personal-task-management/pkg/response"
)

// Weekly godoc
// @Summary     Daily task activity for the last 7 days
// @Tags        Stats
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {array} dayResp
// @Router      /api/v1/stats/tasks/weekly [GET]
func (h *handler) Weekly(c *gin.Context) {
	h.daily(c, stats.WeeklyDays)
}

// Monthly godoc
// @Summary     Daily task activity for the last 30 days
// @Tags        Stats
// @Produce     json
// @Param       X-User-ID header string true "Caller id"
// @Success     200 {array} dayResp
// @Router      /api/v1/stats/tasks/monthly [GET]
func (h *handler) Monthly(c *gin.Context) {
	h.daily(c, stats.MonthlyDays)
}

func (h *handler) daily(c *gin.Context, days int) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized)
		return
	}

	output, err := h.uc.Daily(ctx, sc, stats.DailyInput{Days: days})
	if err != nil {
		h.l.Errorf(ctx, "uc.Daily: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDailyResp(output))
}
