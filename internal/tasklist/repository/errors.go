package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task list")
	ErrFailedToGet    = errors.New("failed to get task list")
	ErrFailedToList   = errors.New("failed to list task lists")
	ErrFailedToUpdate = errors.New("failed to update task list")
	ErrFailedToDelete = errors.New("failed to delete task list")
	ErrFailedToCount  = errors.New("failed to count tasks of task list")
)
