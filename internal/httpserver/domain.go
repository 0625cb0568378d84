package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/profile"
	profileHTTP "personal-task-management/internal/profile/delivery/http"
	profileRepo "personal-task-management/internal/profile/repository/sqlite"
	profileUC "personal-task-management/internal/profile/usecase"
	statsHTTP "personal-task-management/internal/stats/delivery/http"
	statsRepo "personal-task-management/internal/stats/repository/sqlite"
	statsUC "personal-task-management/internal/stats/usecase"
	taskHTTP "personal-task-management/internal/task/delivery/http"
	taskRepo "personal-task-management/internal/task/repository/sqlite"
	taskUC "personal-task-management/internal/task/usecase"
	"personal-task-management/internal/tasklist"
	listHTTP "personal-task-management/internal/tasklist/delivery/http"
	listRepo "personal-task-management/internal/tasklist/repository/sqlite"
	listUC "personal-task-management/internal/tasklist/usecase"
)

// setupTaskListDomain registers /api/v1/task-lists. The use case is returned
// because the task domain checks list ownership through it.
func (srv *HTTPServer) setupTaskListDomain(ctx context.Context, api *gin.RouterGroup) tasklist.UseCase {
	repo := listRepo.New(srv.db, srv.l)
	uc := listUC.New(repo, srv.l)
	h := listHTTP.New(srv.l, uc)

	listHTTP.RegisterRoutes(api.Group("/task-lists"), h, srv.mw)

	srv.l.Infof(ctx, "Task list domain registered")
	return uc
}

// setupTaskDomain registers /api/v1/task-lists/:id/tasks and /api/v1/tasks.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, lists tasklist.UseCase) {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, repo, lists, srv.dateMath, srv.calendar, srv.calendarID)
	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h, srv.mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Task domain registered (calendar mirror on %s)", srv.calendarID)
		return
	}
	srv.l.Infof(ctx, "Task domain registered")
}

// setupProfileDomain registers /api/v1/profile. The use case is returned
// because stats cut days in the caller's profile timezone.
func (srv *HTTPServer) setupProfileDomain(ctx context.Context, api *gin.RouterGroup) profile.UseCase {
	repo := profileRepo.New(srv.db, srv.l)
	uc := profileUC.New(repo, srv.l)
	h := profileHTTP.New(srv.l, uc)

	profileHTTP.RegisterRoutes(api.Group("/profile"), h, srv.mw)

	srv.l.Infof(ctx, "Profile domain registered")
	return uc
}

// setupStatsDomain registers /api/v1/stats/tasks/*.
func (srv *HTTPServer) setupStatsDomain(ctx context.Context, api *gin.RouterGroup, profiles profile.UseCase) {
	repo := statsRepo.New(srv.db, srv.l)
	uc := statsUC.New(srv.l, repo, profiles, srv.dateMath)
	h := statsHTTP.New(srv.l, uc)

	statsHTTP.RegisterRoutes(api.Group("/stats"), h, srv.mw)

	srv.l.Infof(ctx, "Stats domain registered")
}
