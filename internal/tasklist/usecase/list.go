package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/tasklist"
)

// List returns the caller's lists as a folder tree.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input tasklist.ListInput) (tasklist.ListOutput, error) {
	f, byID, err := uc.forest(ctx, sc, input.IncludeArchived)
	if err != nil {
		uc.l.Errorf(ctx, "tasklist.usecase.List forest: %v", err)
		return tasklist.ListOutput{}, err
	}

	return tasklist.ListOutput{Lists: nest(f, byID, f.Roots())}, nil
}
