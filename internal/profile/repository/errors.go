package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get profile")
	ErrFailedToUpsert = errors.New("failed to save profile")
)
