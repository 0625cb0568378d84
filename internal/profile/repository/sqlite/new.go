package sqlite

import (
	"context"
	"fmt"

	"personal-task-management/internal/profile/repository"
	pkgLog "personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

type implRepository struct {
	db *pkgSqlite.DB
	l  pkgLog.Logger
}

// New creates a new SQLite-backed Repository for profiles.
func New(db *pkgSqlite.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("profile/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.InTx(ctx, fn)
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/sqlite.%s", method)
}
