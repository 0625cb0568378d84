package profile

import "errors"

var (
	ErrInvalidTimeZone = errors.New("invalid time zone")
)
