package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	TaskListID  string
	ParentID    string
	Title       string
	Description string
	Completed   bool
	CompletedAt *time.Time
	Level       int
	Priority    string
	DueDate     *time.Time
	Tags        []string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID         string
	TaskListID string
}

// ListTasksOptions holds filter parameters for listing Tasks.
type ListTasksOptions struct {
	TaskListID string
}

// UpdateTaskOptions carries the full row to write back.
type UpdateTaskOptions struct {
	ID              string
	TaskListID      string
	ParentID        string
	Title           string
	Description     string
	Completed       bool
	CompletedAt     *time.Time
	Level           int
	Priority        string
	DueDate         *time.Time
	Tags            []string
	CalendarEventID string
}
