package http

import (
	"errors"
	"net/http"

	"personal-task-management/internal/profile"
	pkgErrors "personal-task-management/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrInvalidTimeZone):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "time_zone must be an IANA timezone name")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
