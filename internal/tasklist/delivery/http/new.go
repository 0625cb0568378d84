package http

import (
	"personal-task-management/internal/tasklist"
	"personal-task-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tasklist.UseCase
}

// New creates a new HTTP handler for the tasklist domain.
func New(l log.Logger, uc tasklist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
