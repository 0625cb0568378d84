package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
)

// Create adds a task to a list. With a parent, the parent must live in the same
// list and the new task sits one level below it; otherwise it is a root at level 0.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateTaskOutput{}, fmt.Errorf("%w: title is required", task.ErrValidation)
	}

	priority := input.Priority
	if priority == "" {
		priority = task.PriorityMedium
	}
	if !priority.Valid() {
		return task.CreateTaskOutput{}, fmt.Errorf("%w: unknown priority %q", task.ErrValidation, priority)
	}

	dueDate, err := uc.parseDueDate(input.DueDate)
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	var completedAt *time.Time
	if input.Completed {
		now := uc.now().UTC()
		completedAt = &now
	}

	var created task.Task
	err = uc.repo.InTx(ctx, func(ctx context.Context) error {
		if _, err := uc.getWritableList(ctx, sc, input.TaskListID); err != nil {
			return err
		}

		level := 0
		if input.ParentID != "" {
			parent, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ParentID, TaskListID: input.TaskListID})
			if err != nil {
				uc.l.Errorf(ctx, "task.usecase.Create GetOneTask: %v", err)
				return err
			}
			if parent.ID == "" {
				return fmt.Errorf("%w: parent %s", task.ErrTaskNotFound, input.ParentID)
			}
			level = parent.Level + 1
		}

		t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
			TaskListID:  input.TaskListID,
			ParentID:    input.ParentID,
			Title:       input.Title,
			Description: input.Description,
			Completed:   input.Completed,
			CompletedAt: completedAt,
			Level:       level,
			Priority:    string(priority),
			DueDate:     dueDate,
			Tags:        normalizeTags(input.Tags),
		})
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.Create CreateTask: %v", err)
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return task.CreateTaskOutput{}, err
	}

	created = uc.syncCalendar(ctx, created, nil)
	return task.CreateTaskOutput{Task: created}, nil
}

// parseDueDate resolves user input; "" means no due date.
func (uc *implUseCase) parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := uc.dateMath.Parse(raw, uc.now())
	if err != nil {
		return nil, fmt.Errorf("%w: due_date: %v", task.ErrValidation, err)
	}
	return &t, nil
}
