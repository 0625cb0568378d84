package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// Update applies a partial update. Structural changes follow these rules:
//   - moving to another list takes the whole subtree along; a parent left behind
//     in the old list is cleared and the task becomes a root
//   - a new parent must exist in the task's (possibly new) list and must not be
//     the task itself or one of its descendants
//   - an explicit null parent makes the task a root
//   - descendants are shifted by the same level delta as the task
//   - an explicit level is stored as given
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	var before, updated task.Task
	err := uc.repo.InTx(ctx, func(ctx context.Context) error {
		existing, err := uc.getOwnedTask(ctx, sc, input.ID)
		if err != nil {
			return err
		}
		before = existing

		next, err := uc.applyFields(existing, input)
		if err != nil {
			return err
		}

		source, _, err := uc.loadListTree(ctx, existing.TaskListID)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Update loadListTree: %v", err)
			return err
		}
		target := source
		subtree := source.forest.Descendants(existing.ID)
		structural := false

		if input.TaskListID != nil && *input.TaskListID != existing.TaskListID {
			if _, err := uc.getWritableList(ctx, sc, *input.TaskListID); err != nil {
				return err
			}
			target, _, err = uc.loadListTree(ctx, *input.TaskListID)
			if err != nil {
				uc.l.Errorf(ctx, "task.usecase.Update loadListTree target: %v", err)
				return err
			}

			next.TaskListID = *input.TaskListID
			if _, parentInTarget := target.byID[next.ParentID]; next.ParentID != "" && !parentInTarget {
				next.ParentID = ""
				next.Level = 0
			}
			structural = true
		}

		if input.ParentID.Set {
			if input.ParentID.IsNull() || *input.ParentID.Value == "" {
				next.ParentID = ""
				next.Level = 0
			} else {
				parent, err := uc.validateParent(target, existing.ID, *input.ParentID.Value)
				if err != nil {
					return err
				}
				next.ParentID = parent.ID
				next.Level = parent.Level + 1
			}
			structural = true
		}

		delta := next.Level - existing.Level
		if input.Level != nil {
			next.Level = *input.Level
		}

		t, err := uc.repo.UpdateTask(ctx, toUpdateOptions(next))
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Update UpdateTask: %v", err)
			return err
		}
		updated = t

		if !structural {
			return nil
		}
		for _, id := range subtree {
			d := source.byID[id]
			if delta == 0 && d.TaskListID == next.TaskListID {
				continue
			}
			d.Level += delta
			d.TaskListID = next.TaskListID
			if _, err := uc.repo.UpdateTask(ctx, toUpdateOptions(d)); err != nil {
				uc.l.Errorf(ctx, "task.usecase.Update UpdateTask descendant %s: %v", id, err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	updated = uc.syncCalendar(ctx, updated, &before)
	return task.UpdateTaskOutput{Task: updated}, nil
}

// validateParent checks a parent candidate for taskID inside lt, the list the
// task will live in. The candidate's ancestor chain is walked to the root; the
// task appearing on it would close a cycle.
func (uc *implUseCase) validateParent(lt listTree, taskID, parentID string) (task.Task, error) {
	if parentID == taskID {
		return task.Task{}, fmt.Errorf("%w: task %s cannot be its own parent", task.ErrCircularReference, taskID)
	}

	parent, ok := lt.byID[parentID]
	if !ok {
		return task.Task{}, fmt.Errorf("%w: parent %s is not in the task's list", task.ErrInvalidParent, parentID)
	}
	if lt.forest.IsAncestor(taskID, parentID) {
		return task.Task{}, fmt.Errorf("%w: %s is a descendant of %s", task.ErrCircularReference, parentID, taskID)
	}
	return parent, nil
}

// applyFields copies the non-structural fields of input onto t.
func (uc *implUseCase) applyFields(t task.Task, input task.UpdateTaskInput) (task.Task, error) {
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return task.Task{}, fmt.Errorf("%w: title must not be empty", task.ErrValidation)
		}
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return task.Task{}, fmt.Errorf("%w: unknown priority %q", task.ErrValidation, *input.Priority)
		}
		t.Priority = *input.Priority
	}
	if input.Tags != nil {
		t.Tags = normalizeTags(*input.Tags)
	}

	if input.Completed != nil && *input.Completed != t.Completed {
		t.Completed = *input.Completed
		t.CompletedAt = nil
		if t.Completed {
			now := uc.now().UTC()
			t.CompletedAt = &now
		}
	}

	if input.DueDate.Set {
		if input.DueDate.IsNull() {
			t.DueDate = nil
		} else {
			due, err := uc.parseDueDate(*input.DueDate.Value)
			if err != nil {
				return task.Task{}, err
			}
			t.DueDate = due
		}
	}

	if input.Level != nil && *input.Level < 0 {
		return task.Task{}, fmt.Errorf("%w: level must not be negative", task.ErrValidation)
	}
	return t, nil
}
