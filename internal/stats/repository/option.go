package repository

import "time"

type ListActivityOptions struct {
	UserID string
	Since  time.Time
}
