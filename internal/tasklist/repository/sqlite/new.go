package sqlite

import (
	"context"
	"fmt"

	"personal-task-management/internal/tasklist/repository"
	pkgLog "personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

type implRepository struct {
	db *pkgSqlite.DB
	l  pkgLog.Logger
}

// New creates a new SQLite-backed Repository for task lists.
func New(db *pkgSqlite.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("tasklist/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// InTx runs fn in a transaction shared by every repository built on the same DB.
func (r *implRepository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.InTx(ctx, fn)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("tasklist/repository/sqlite.%s", method)
}
