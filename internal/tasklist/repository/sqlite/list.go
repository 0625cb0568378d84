package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"personal-task-management/internal/tasklist"
	repo "personal-task-management/internal/tasklist/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanList(s scanner) (tasklist.TaskList, error) {
	var (
		l        tasklist.TaskList
		parentID sql.NullString
	)
	err := s.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.IsFolder, &l.IsArchived, &parentID, &l.CreatedAt, &l.UpdatedAt)
	l.ParentID = parentID.String
	return l, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateList inserts a new TaskList row and returns the created entity.
func (r *implRepository) CreateList(ctx context.Context, opt repo.CreateListOptions) (tasklist.TaskList, error) {
	now := time.Now().UTC()
	l := tasklist.TaskList{
		ID:          uuid.New().String(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		IsFolder:    opt.IsFolder,
		ParentID:    opt.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const query = `
		INSERT INTO task_lists (id, user_id, title, description, is_folder, is_archived, parent_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?, ?)`
	_, err := r.db.Conn(ctx).ExecContext(ctx, query,
		l.ID, l.UserID, l.Title, l.Description, l.IsFolder, nullable(l.ParentID), l.CreatedAt, l.UpdatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateList"), err)
		return tasklist.TaskList{}, repo.ErrFailedToInsert
	}
	return l, nil
}

// GetOneList retrieves a single TaskList by the provided filters (AND condition).
// Returns zero-value TaskList (ID == "") when not found.
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (tasklist.TaskList, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM task_lists WHERE %s LIMIT 1", listColumns, mods)

	l, err := scanList(r.db.Conn(ctx).QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return tasklist.TaskList{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return tasklist.TaskList{}, repo.ErrFailedToGet
	}
	return l, nil
}

// ListLists returns every list of a user matching the filters.
func (r *implRepository) ListLists(ctx context.Context, opt repo.ListListsOptions) ([]tasklist.TaskList, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM task_lists %s", listColumns, mods)

	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var lists []tasklist.TaskList
	for rows.Next() {
		l, err := scanList(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLists"), err)
			return nil, repo.ErrFailedToList
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	return lists, nil
}

// UpdateList writes the full row back and returns the stored entity.
// Returns zero-value TaskList when the id does not exist.
func (r *implRepository) UpdateList(ctx context.Context, opt repo.UpdateListOptions) (tasklist.TaskList, error) {
	const query = `
		UPDATE task_lists
		SET title = ?, description = ?, is_folder = ?, is_archived = ?, parent_id = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.Conn(ctx).ExecContext(ctx, query,
		opt.Title, opt.Description, opt.IsFolder, opt.IsArchived, nullable(opt.ParentID), time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateList"), err)
		return tasklist.TaskList{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return tasklist.TaskList{}, nil
	}
	return r.GetOneList(ctx, repo.GetOneListOptions{ID: opt.ID})
}

// CountTasks returns the number of tasks stored in the list.
func (r *implRepository) CountTasks(ctx context.Context, id string) (int, error) {
	const query = `SELECT COUNT(*) FROM tasks WHERE task_list_id = ?`

	var n int
	if err := r.db.Conn(ctx).QueryRowContext(ctx, query, id).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTasks"), err)
		return 0, repo.ErrFailedToCount
	}
	return n, nil
}

// DeleteList removes a TaskList by ID. Its tasks go with it (ON DELETE CASCADE).
func (r *implRepository) DeleteList(ctx context.Context, id string) error {
	const query = `DELETE FROM task_lists WHERE id = ?`
	if _, err := r.db.Conn(ctx).ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
