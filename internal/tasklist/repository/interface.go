package repository

import (
	"context"

	"personal-task-management/internal/tasklist"
)

// Repository is the composed interface for the task list data store.
type Repository interface {
	ListRepository
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ListRepository defines all data access methods for the TaskList entity.
type ListRepository interface {
	CreateList(ctx context.Context, opt CreateListOptions) (tasklist.TaskList, error)
	GetOneList(ctx context.Context, opt GetOneListOptions) (tasklist.TaskList, error)
	ListLists(ctx context.Context, opt ListListsOptions) ([]tasklist.TaskList, error)
	UpdateList(ctx context.Context, opt UpdateListOptions) (tasklist.TaskList, error)
	DeleteList(ctx context.Context, id string) error
	// CountTasks returns how many tasks the list holds.
	CountTasks(ctx context.Context, id string) (int, error)
}
