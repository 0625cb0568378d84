package usecase

import (
	"time"

	"personal-task-management/internal/task"
	"personal-task-management/internal/task/repository"
	"personal-task-management/internal/tasklist"
	"personal-task-management/pkg/datemath"
	pkgLog "personal-task-management/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	lists      tasklist.UseCase
	dateMath   *datemath.Parser
	calendar   task.Calendar
	calendarID string
	now        func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil, in which case
// due dates are not mirrored.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	lists tasklist.UseCase,
	dateMath *datemath.Parser,
	calendar task.Calendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		lists:      lists,
		dateMath:   dateMath,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
