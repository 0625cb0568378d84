package sqlite

import (
	"context"
	"database/sql"

	"personal-task-management/internal/stats/repository"
)

const activityQuery = `
	SELECT t.created_at, t.completed_at
	FROM tasks t
	JOIN task_lists l ON l.id = t.task_list_id
	WHERE l.user_id = ? AND (t.created_at >= ? OR t.completed_at >= ?)`

func (r *implRepository) ListActivity(ctx context.Context, opt repository.ListActivityOptions) ([]repository.Activity, error) {
	since := opt.Since.UTC()
	rows, err := r.db.Conn(ctx).QueryContext(ctx, activityQuery, opt.UserID, since, since)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListActivity"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var out []repository.Activity
	for rows.Next() {
		var (
			a           repository.Activity
			completedAt sql.NullTime
		)
		if err := rows.Scan(&a.CreatedAt, &completedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListActivity"), err)
			return nil, repository.ErrFailedToList
		}
		if completedAt.Valid {
			v := completedAt.Time
			a.CompletedAt = &v
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListActivity"), err)
		return nil, repository.ErrFailedToList
	}
	return out, nil
}
