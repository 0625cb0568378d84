package repository

import (
	"context"
	"time"
)

// Activity is the pair of timestamps the daily stats are built from.
type Activity struct {
	CreatedAt   time.Time
	CompletedAt *time.Time
}

//go:generate mockery --name Repository
type Repository interface {
	// ListActivity returns the user's tasks created or completed at or after opt.Since.
	ListActivity(ctx context.Context, opt ListActivityOptions) ([]Activity, error)
}
