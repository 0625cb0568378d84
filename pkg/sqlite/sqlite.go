package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	pkgLog "personal-task-management/pkg/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	migrationsDir     = "migrations"
	lockRetryInterval = 200 * time.Millisecond
)

// Config describes where the database file lives.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// DB wraps the SQL connection pool.
type DB struct {
	*sql.DB
	path string
	l    pkgLog.Logger
}

// Open opens the database file, creating its directory when needed.
// Migrations are not applied here; call Migrate.
func Open(ctx context.Context, cfg Config, l pkgLog.Logger) (*DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_foreign_keys=ON",
		cfg.Path, busy.Milliseconds())

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite has a single writer; one connection serializes every transaction.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{DB: sqlDB, path: cfg.Path, l: l}, nil
}

// Migrate applies all pending migrations. A lock file next to the database keeps
// two processes from migrating the same file at once.
func (db *DB) Migrate(ctx context.Context) error {
	lock := flock.New(db.path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("migration lock %s is held by another process", lock.Path())
	}
	defer lock.Unlock()

	if err := db.gooseSetup(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Version reports the currently applied migration version.
func (db *DB) Version(ctx context.Context) (int64, error) {
	if err := db.gooseSetup(); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersionContext(ctx, db.DB)
	if err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}
	return v, nil
}

func (db *DB) gooseSetup() error {
	goose.SetLogger(gooseLogger{l: db.l})
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// gooseLogger routes goose output through the service logger.
type gooseLogger struct {
	l pkgLog.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	if g.l != nil {
		g.l.Infof(context.Background(), "goose: "+format, v...)
	}
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	if g.l != nil {
		g.l.Fatalf(context.Background(), "goose: "+format, v...)
	}
}
