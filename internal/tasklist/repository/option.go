package repository

// CreateListOptions holds parameters for inserting a new TaskList.
type CreateListOptions struct {
	UserID      string
	Title       string
	Description string
	IsFolder    bool
	ParentID    string
}

// GetOneListOptions holds filter parameters for fetching a single TaskList.
// All non-empty fields are applied as AND conditions.
type GetOneListOptions struct {
	ID     string
	UserID string
}

// ListListsOptions holds filter parameters for listing TaskLists.
type ListListsOptions struct {
	UserID          string
	ParentID        string
	IncludeArchived bool
}

// UpdateListOptions carries the full row to write back.
type UpdateListOptions struct {
	ID          string
	Title       string
	Description string
	IsFolder    bool
	IsArchived  bool
	ParentID    string
}
