package http

import (
	"errors"
	"net/http"

	"personal-task-management/internal/task"
	"personal-task-management/internal/tasklist"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, tasklist.ErrListNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task list not found")
	case errors.Is(err, task.ErrInvalidParent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrCircularReference):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, task.ErrValidation):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
