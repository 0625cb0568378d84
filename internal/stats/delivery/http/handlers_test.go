package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-task-management/internal/middleware"
	"personal-task-management/internal/model"
	"personal-task-management/internal/stats"
	"personal-task-management/pkg/log"
)

type fakeUseCase struct {
	err     error
	gotDays int
}

func (f *fakeUseCase) Daily(ctx context.Context, sc model.Scope, in stats.DailyInput) (stats.DailyOutput, error) {
	f.gotDays = in.Days
	days := make([]stats.DayCount, in.Days)
	for i := range days {
		days[i] = stats.DayCount{Date: time.Date(2026, 3, 1+i, 0, 0, 0, 0, time.UTC), CreatedCount: i}
	}
	return stats.DailyOutput{Days: days}, f.err
}

func get(uc stats.UseCase, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/stats"), New(log.NewNop(), uc), middleware.New(log.NewNop(), "", 0))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWeekly(t *testing.T) {
	uc := &fakeUseCase{}
	w := get(uc, "/api/v1/stats/tasks/weekly")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, stats.WeeklyDays, uc.gotDays)

	var body struct {
		Data []struct {
			Date           string `json:"date"`
			CreatedCount   int    `json:"created_count"`
			CompletedCount int    `json:"completed_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 7)
	assert.Equal(t, "2026-03-01", body.Data[0].Date)
	assert.Equal(t, 6, body.Data[6].CreatedCount)
}

func TestMonthly(t *testing.T) {
	uc := &fakeUseCase{}
	w := get(uc, "/api/v1/stats/tasks/monthly")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, stats.MonthlyDays, uc.gotDays)
}

func TestDailyError(t *testing.T) {
	w := get(&fakeUseCase{err: errors.New("db down")}, "/api/v1/stats/tasks/weekly")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
