package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"personal-task-management/internal/task"
	repo "personal-task-management/internal/task/repository"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (task.Task, error) {
	var (
		t           task.Task
		parentID    sql.NullString
		completedAt sql.NullTime
		dueDate     sql.NullTime
		priority    string
		tags        string
	)
	err := s.Scan(&t.ID, &t.TaskListID, &parentID, &t.Title, &t.Description, &t.Completed, &completedAt,
		&t.Level, &priority, &dueDate, &tags, &t.CalendarEventID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, err
	}

	t.ParentID = parentID.String
	t.Priority = task.Priority(priority)
	if completedAt.Valid {
		v := completedAt.Time
		t.CompletedAt = &v
	}
	if dueDate.Valid {
		v := dueDate.Time
		t.DueDate = &v
	}
	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return task.Task{}, fmt.Errorf("decode tags: %w", err)
	}
	return t, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	return string(b), err
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	tags, err := encodeTags(opt.Tags)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeTags: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	const query = `
		INSERT INTO tasks (id, task_list_id, parent_id, title, description, completed, completed_at,
			level, priority, due_date, tags, calendar_event_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '', ?, ?)`

	_, err = r.db.Conn(ctx).ExecContext(ctx, query,
		id, opt.TaskListID, nullable(opt.ParentID), opt.Title, opt.Description, opt.Completed, nullTime(opt.CompletedAt),
		opt.Level, opt.Priority, nullTime(opt.DueDate), tags, now, now)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.Conn(ctx).QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns every task matching the filters. The full result set is read
// before returning so callers can issue further queries on the single connection.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.Conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask writes the full row back and returns the stored entity.
// Returns zero-value Task when the id does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	tags, err := encodeTags(opt.Tags)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeTags: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE tasks
		SET task_list_id = ?, parent_id = ?, title = ?, description = ?, completed = ?, completed_at = ?,
			level = ?, priority = ?, due_date = ?, tags = ?, calendar_event_id = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.Conn(ctx).ExecContext(ctx, query,
		opt.TaskListID, nullable(opt.ParentID), opt.Title, opt.Description, opt.Completed, nullTime(opt.CompletedAt),
		opt.Level, opt.Priority, nullTime(opt.DueDate), tags, opt.CalendarEventID, time.Now().UTC(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return task.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: opt.ID})
}

// DeleteTask removes a single Task by ID. Children still pointing at it are
// removed by the parent_id cascade.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.Conn(ctx).ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
