package task

import "time"

// Priority is the user-assigned importance of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// --- Task Domain Model ---

// Task is a node in a list's task forest.
type Task struct {
	ID              string
	TaskListID      string
	ParentID        string // "" for top-level tasks
	Title           string
	Description     string
	Completed       bool
	CompletedAt     *time.Time
	Level           int
	Priority        Priority
	DueDate         *time.Time
	Tags            []string
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Node is a task with its nested subtasks, as rendered for a list.
type Node struct {
	Task     Task
	Children []Node
}

// Nullable distinguishes a field that was not sent from one explicitly set to null.
// Set && Value == nil means "clear".
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// IsNull reports an explicit null.
func (n Nullable[T]) IsNull() bool {
	return n.Set && n.Value == nil
}

// --- UseCase Inputs ---

type CreateTaskInput struct {
	TaskListID  string
	ParentID    string
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	DueDate     string // RFC3339, YYYY-MM-DD or a relative expression; "" for none
	Tags        []string
}

// UpdateTaskInput is a partial update. nil pointers leave fields untouched.
type UpdateTaskInput struct {
	ID          string
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	DueDate     Nullable[string]
	Tags        *[]string
	TaskListID  *string
	ParentID    Nullable[string]
	Level       *int // stored as given, no recomputation
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task Task
}

type ListTasksOutput struct {
	Tasks []Task // flat, ordered by level then creation time
	Tree  []Node
}

type DetailTaskOutput struct {
	Task Task
}

type UpdateTaskOutput struct {
	Task Task
}
