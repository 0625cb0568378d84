package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
	"personal-task-management/internal/task/tree"
	"personal-task-management/internal/tasklist"
)

// listTree is one list's tasks loaded for a mutation: rows by id plus the
// adjacency index over them.
type listTree struct {
	forest *tree.Forest
	byID   map[string]task.Task
}

func (uc *implUseCase) loadListTree(ctx context.Context, taskListID string) (listTree, []task.Task, error) {
	rows, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{TaskListID: taskListID})
	if err != nil {
		return listTree{}, nil, err
	}

	nodes := make([]tree.Node, 0, len(rows))
	byID := make(map[string]task.Task, len(rows))
	for _, t := range rows {
		nodes = append(nodes, tree.Node{ID: t.ID, ParentID: t.ParentID})
		byID[t.ID] = t
	}
	return listTree{forest: tree.New(nodes), byID: byID}, rows, nil
}

// getWritableList resolves a list the caller owns and that can hold tasks.
func (uc *implUseCase) getWritableList(ctx context.Context, sc model.Scope, taskListID string) (tasklist.TaskList, error) {
	out, err := uc.lists.Detail(ctx, sc, taskListID)
	if err != nil {
		return tasklist.TaskList{}, err
	}
	if out.List.IsFolder {
		return tasklist.TaskList{}, fmt.Errorf("%w: list %s is a folder", task.ErrInvalidParent, taskListID)
	}
	return out.List, nil
}

// getOwnedTask loads a task whose list belongs to the caller. A task in a list
// owned by someone else is reported as not found.
func (uc *implUseCase) getOwnedTask(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		return task.Task{}, err
	}
	if t.ID == "" {
		return task.Task{}, task.ErrTaskNotFound
	}

	if _, err := uc.lists.Detail(ctx, sc, t.TaskListID); err != nil {
		if errors.Is(err, tasklist.ErrListNotFound) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, err
	}
	return t, nil
}

// normalizeTags trims, drops empties and de-duplicates while keeping order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func toUpdateOptions(t task.Task) repo.UpdateTaskOptions {
	return repo.UpdateTaskOptions{
		ID:              t.ID,
		TaskListID:      t.TaskListID,
		ParentID:        t.ParentID,
		Title:           t.Title,
		Description:     t.Description,
		Completed:       t.Completed,
		CompletedAt:     t.CompletedAt,
		Level:           t.Level,
		Priority:        string(t.Priority),
		DueDate:         t.DueDate,
		Tags:            t.Tags,
		CalendarEventID: t.CalendarEventID,
	}
}

func nest(f *tree.Forest, byID map[string]task.Task, ids []string) []task.Node {
	out := make([]task.Node, 0, len(ids))
	for _, id := range ids {
		out = append(out, task.Node{
			Task:     byID[id],
			Children: nest(f, byID, f.Children(id)),
		})
	}
	return out
}
