package repository

import (
	"context"

	"personal-task-management/internal/task"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
	// InTx runs fn in one transaction; repository calls made with the ctx passed
	// to fn take part in it.
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (task.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (task.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]task.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (task.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
