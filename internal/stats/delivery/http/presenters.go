package http

import (
	"personal-task-management/internal/stats"
	"personal-task-management/pkg/response"
)

type dayResp struct {
	Date           response.Date `json:"date" swaggertype:"string" example:"2026-03-02"`
	CreatedCount   int           `json:"created_count"`
	CompletedCount int           `json:"completed_count"`
}

func (h *handler) newDailyResp(out stats.DailyOutput) []dayResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayResp{
			Date:           response.Date(d.Date),
			CreatedCount:   d.CreatedCount,
			CompletedCount: d.CompletedCount,
		}
	}
	return days
}
