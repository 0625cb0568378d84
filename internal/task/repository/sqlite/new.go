package sqlite

import (
	"context"
	"fmt"

	"personal-task-management/internal/task/repository"
	pkgLog "personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

type implRepository struct {
	db *pkgSqlite.DB
	l  pkgLog.Logger
}

// New creates a new SQLite-backed Repository for tasks.
func New(db *pkgSqlite.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.InTx(ctx, fn)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
