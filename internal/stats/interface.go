package stats

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Daily counts tasks created and completed on each of the last input.Days days, today included.
	Daily(ctx context.Context, sc model.Scope, input DailyInput) (DailyOutput, error)
}
