package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// List returns a list's tasks both flat and nested.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, taskListID string) (task.ListTasksOutput, error) {
	if _, err := uc.lists.Detail(ctx, sc, taskListID); err != nil {
		return task.ListTasksOutput{}, err
	}

	lt, rows, err := uc.loadListTree(ctx, taskListID)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List loadListTree: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks: rows,
		Tree:  nest(lt.forest, lt.byID, lt.forest.Roots()),
	}, nil
}

// Detail returns a single task owned by the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error) {
	t, err := uc.getOwnedTask(ctx, sc, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: t}, nil
}
