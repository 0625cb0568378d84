package http

import (
	"errors"
	"net/http"

	"personal-task-management/internal/tasklist"
	pkgErrors "personal-task-management/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tasklist.ErrListNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task list not found")
	case errors.Is(err, tasklist.ErrInvalidParent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "parent must be a folder you own")
	case errors.Is(err, tasklist.ErrFolderNotEmpty):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "folder still contains lists")
	case errors.Is(err, tasklist.ErrListHasTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "list still contains tasks")
	case errors.Is(err, tasklist.ErrCircularReference):
		return pkgErrors.NewHTTPError(http.StatusConflict, "a folder cannot be moved into itself")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
