package usecase

import (
	"personal-task-management/internal/profile/repository"
	pkgLog "personal-task-management/pkg/log"
)

// implUseCase is the private implementation of profile.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new profile UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
