package usecase

import (
	"time"

	"personal-task-management/internal/profile"
	"personal-task-management/internal/stats/repository"
	"personal-task-management/pkg/datemath"
	pkgLog "personal-task-management/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	profiles profile.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates the stats UseCase. Days are cut in the caller's profile
// timezone, or in dateMath's timezone when the profile sets none.
func New(l pkgLog.Logger, repo repository.Repository, profiles profile.UseCase, dateMath *datemath.Parser) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		profiles: profiles,
		dateMath: dateMath,
		now:      time.Now,
	}
}
