package http

import (
	"errors"
	"net/http"

	"personal-task-management/internal/stats"
	pkgErrors "personal-task-management/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, stats.ErrInvalidRange) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
