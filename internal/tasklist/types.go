package tasklist

import "time"

// --- TaskList Domain Model ---

// TaskList is a named collection of tasks, or a folder holding other lists.
type TaskList struct {
	ID          string
	UserID      string
	Title       string
	Description string
	IsFolder    bool
	IsArchived  bool
	ParentID    string // "" at the root
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Node is a list with its nested child lists.
type Node struct {
	List     TaskList
	Children []Node
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	IsFolder    bool
	ParentID    string
}

type ListInput struct {
	IncludeArchived bool
}

// UpdateInput is a partial update. ParentIDSet with ParentID == "" moves the list to the root.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	IsFolder    *bool
	IsArchived  *bool
	ParentIDSet bool
	ParentID    string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	List TaskList
}

type ListOutput struct {
	Lists []Node
}

type DetailOutput struct {
	List TaskList
}

type UpdateOutput struct {
	List TaskList
}
