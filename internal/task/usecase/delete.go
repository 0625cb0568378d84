package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// DeleteCascade removes the task's descendants bottom-up, then the task.
func (uc *implUseCase) DeleteCascade(ctx context.Context, sc model.Scope, id string) error {
	var deleted []task.Task
	err := uc.repo.InTx(ctx, func(ctx context.Context) error {
		existing, err := uc.getOwnedTask(ctx, sc, id)
		if err != nil {
			return err
		}

		lt, _, err := uc.loadListTree(ctx, existing.TaskListID)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.DeleteCascade loadListTree: %v", err)
			return err
		}

		for _, descendantID := range lt.forest.Descendants(existing.ID) {
			if err := uc.repo.DeleteTask(ctx, descendantID); err != nil {
				uc.l.Errorf(ctx, "task.usecase.DeleteCascade DeleteTask %s: %v", descendantID, err)
				return err
			}
			deleted = append(deleted, lt.byID[descendantID])
		}

		if err := uc.repo.DeleteTask(ctx, existing.ID); err != nil {
			uc.l.Errorf(ctx, "task.usecase.DeleteCascade DeleteTask: %v", err)
			return err
		}
		deleted = append(deleted, existing)
		return nil
	})
	if err != nil {
		return err
	}

	uc.dropCalendarEvents(ctx, deleted)
	return nil
}

// DeleteKeepChildren removes only the task. Its direct children are attached to
// the task's parent, or become roots, and take that parent's level + 1. Deeper
// descendants keep their stored level.
func (uc *implUseCase) DeleteKeepChildren(ctx context.Context, sc model.Scope, id string) error {
	var existing task.Task
	err := uc.repo.InTx(ctx, func(ctx context.Context) error {
		var err error
		existing, err = uc.getOwnedTask(ctx, sc, id)
		if err != nil {
			return err
		}

		lt, _, err := uc.loadListTree(ctx, existing.TaskListID)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.DeleteKeepChildren loadListTree: %v", err)
			return err
		}

		level := 0
		if parent, ok := lt.byID[existing.ParentID]; ok {
			level = parent.Level + 1
		}

		for _, childID := range lt.forest.Children(existing.ID) {
			child := lt.byID[childID]
			child.ParentID = existing.ParentID
			child.Level = level
			if _, err := uc.repo.UpdateTask(ctx, toUpdateOptions(child)); err != nil {
				uc.l.Errorf(ctx, "task.usecase.DeleteKeepChildren UpdateTask %s: %v", childID, err)
				return err
			}
		}

		if err := uc.repo.DeleteTask(ctx, existing.ID); err != nil {
			uc.l.Errorf(ctx, "task.usecase.DeleteKeepChildren DeleteTask: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.dropCalendarEvents(ctx, []task.Task{existing})
	return nil
}
