package sqlite

import (
	"fmt"

	"personal-task-management/internal/stats/repository"
	pkgLog "personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

type implRepository struct {
	db *pkgSqlite.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed stats Repository reading the tasks tables.
func New(db *pkgSqlite.DB, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("stats/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("stats/repository/sqlite.%s", method)
}
