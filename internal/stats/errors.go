package stats

import "errors"

var ErrInvalidRange = errors.New("invalid stats range")
