package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-task-management/internal/model"
	"personal-task-management/internal/tasklist"
	listSqlite "personal-task-management/internal/tasklist/repository/sqlite"
	pkgLog "personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

var (
	alice = model.Scope{UserID: "alice"}
	bob   = model.Scope{UserID: "bob"}
)

func newTestUseCase(t *testing.T) (*implUseCase, *pkgSqlite.DB) {
	t.Helper()
	ctx := context.Background()
	l := pkgLog.NewNop()

	db, err := pkgSqlite.Open(ctx, pkgSqlite.Config{Path: filepath.Join(t.TempDir(), "lists.db")}, l)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	return New(listSqlite.New(db, l), l), db
}

func create(t *testing.T, uc *implUseCase, sc model.Scope, in tasklist.CreateInput) tasklist.TaskList {
	t.Helper()
	out, err := uc.Create(context.Background(), sc, in)
	require.NoError(t, err)
	return out.List
}

func ptr[T any](v T) *T { return &v }

func TestCreate(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	folder := create(t, uc, alice, tasklist.CreateInput{Title: "Projects", IsFolder: true})
	list := create(t, uc, alice, tasklist.CreateInput{Title: "Garden", ParentID: folder.ID})
	assert.Equal(t, folder.ID, list.ParentID)
	assert.Equal(t, "alice", list.UserID)
	assert.False(t, list.IsFolder)

	_, err := uc.Create(ctx, alice, tasklist.CreateInput{Title: "x", ParentID: list.ID})
	assert.ErrorIs(t, err, tasklist.ErrInvalidParent)

	_, err = uc.Create(ctx, bob, tasklist.CreateInput{Title: "x", ParentID: folder.ID})
	assert.ErrorIs(t, err, tasklist.ErrInvalidParent)

	_, err = uc.Create(ctx, alice, tasklist.CreateInput{Title: "x", ParentID: "missing"})
	assert.ErrorIs(t, err, tasklist.ErrInvalidParent)
}

func TestListNestsAndScopes(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	folder := create(t, uc, alice, tasklist.CreateInput{Title: "Projects", IsFolder: true})
	inner := create(t, uc, alice, tasklist.CreateInput{Title: "Garden", ParentID: folder.ID})
	inbox := create(t, uc, alice, tasklist.CreateInput{Title: "Inbox"})
	archived := create(t, uc, alice, tasklist.CreateInput{Title: "Old"})
	create(t, uc, bob, tasklist.CreateInput{Title: "Bob's"})

	_, err := uc.Update(ctx, alice, tasklist.UpdateInput{ID: archived.ID, IsArchived: ptr(true)})
	require.NoError(t, err)

	out, err := uc.List(ctx, alice, tasklist.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Lists, 2)
	assert.Equal(t, folder.ID, out.Lists[0].List.ID)
	require.Len(t, out.Lists[0].Children, 1)
	assert.Equal(t, inner.ID, out.Lists[0].Children[0].List.ID)
	assert.Equal(t, inbox.ID, out.Lists[1].List.ID)

	out, err = uc.List(ctx, alice, tasklist.ListInput{IncludeArchived: true})
	require.NoError(t, err)
	assert.Len(t, out.Lists, 3)
}

func TestDetailIsScoped(t *testing.T) {
	uc, _ := newTestUseCase(t)
	list := create(t, uc, alice, tasklist.CreateInput{Title: "Inbox"})

	out, err := uc.Detail(context.Background(), alice, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inbox", out.List.Title)

	_, err = uc.Detail(context.Background(), bob, list.ID)
	assert.ErrorIs(t, err, tasklist.ErrListNotFound)
}

func TestUpdateMove(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	outer := create(t, uc, alice, tasklist.CreateInput{Title: "Outer", IsFolder: true})
	inner := create(t, uc, alice, tasklist.CreateInput{Title: "Inner", IsFolder: true, ParentID: outer.ID})
	list := create(t, uc, alice, tasklist.CreateInput{Title: "List"})

	out, err := uc.Update(ctx, alice, tasklist.UpdateInput{ID: list.ID, ParentIDSet: true, ParentID: inner.ID})
	require.NoError(t, err)
	assert.Equal(t, inner.ID, out.List.ParentID)
	assert.Equal(t, "List", out.List.Title)

	_, err = uc.Update(ctx, alice, tasklist.UpdateInput{ID: outer.ID, ParentIDSet: true, ParentID: inner.ID})
	assert.ErrorIs(t, err, tasklist.ErrCircularReference)

	_, err = uc.Update(ctx, alice, tasklist.UpdateInput{ID: outer.ID, ParentIDSet: true, ParentID: outer.ID})
	assert.ErrorIs(t, err, tasklist.ErrCircularReference)

	_, err = uc.Update(ctx, alice, tasklist.UpdateInput{ID: inner.ID, ParentIDSet: true, ParentID: list.ID})
	assert.ErrorIs(t, err, tasklist.ErrInvalidParent)

	out, err = uc.Update(ctx, alice, tasklist.UpdateInput{ID: list.ID, ParentIDSet: true})
	require.NoError(t, err)
	assert.Equal(t, "", out.List.ParentID)
}

func TestUpdateFolderFlag(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()

	folder := create(t, uc, alice, tasklist.CreateInput{Title: "Projects", IsFolder: true})
	create(t, uc, alice, tasklist.CreateInput{Title: "Garden", ParentID: folder.ID})
	empty := create(t, uc, alice, tasklist.CreateInput{Title: "Empty", IsFolder: true})

	_, err := uc.Update(ctx, alice, tasklist.UpdateInput{ID: folder.ID, IsFolder: ptr(false)})
	assert.ErrorIs(t, err, tasklist.ErrFolderNotEmpty)

	out, err := uc.Update(ctx, alice, tasklist.UpdateInput{ID: empty.ID, IsFolder: ptr(false), Title: ptr("Now a list")})
	require.NoError(t, err)
	assert.False(t, out.List.IsFolder)
	assert.Equal(t, "Now a list", out.List.Title)

	// A list with tasks cannot become a folder.
	errands := create(t, uc, alice, tasklist.CreateInput{Title: "Errands"})
	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, task_list_id, title, created_at, updated_at) VALUES ('t1', ?, 'groceries', datetime('now'), datetime('now'))`,
		errands.ID)
	require.NoError(t, err)

	_, err = uc.Update(ctx, alice, tasklist.UpdateInput{ID: errands.ID, IsFolder: ptr(true)})
	assert.ErrorIs(t, err, tasklist.ErrListHasTasks)
	got, err := uc.Detail(ctx, alice, errands.ID)
	require.NoError(t, err)
	assert.False(t, got.List.IsFolder)

	out, err = uc.Update(ctx, alice, tasklist.UpdateInput{ID: out.List.ID, IsFolder: ptr(true)})
	require.NoError(t, err)
	assert.True(t, out.List.IsFolder)
}

func TestDelete(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()

	folder := create(t, uc, alice, tasklist.CreateInput{Title: "Projects", IsFolder: true})
	child := create(t, uc, alice, tasklist.CreateInput{Title: "Garden", ParentID: folder.ID})
	errands := create(t, uc, alice, tasklist.CreateInput{Title: "Errands"})

	_, err := db.ExecContext(ctx,
		`INSERT INTO tasks (id, task_list_id, title, created_at, updated_at) VALUES ('t1', ?, 'groceries', datetime('now'), datetime('now'))`,
		errands.ID)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx,
		`INSERT INTO tasks (id, task_list_id, parent_id, title, level, created_at, updated_at) VALUES ('t2', ?, 't1', 'milk', 1, datetime('now'), datetime('now'))`,
		errands.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, bob, folder.ID), tasklist.ErrListNotFound)

	require.NoError(t, uc.Delete(ctx, alice, folder.ID))
	_, err = uc.Detail(ctx, alice, folder.ID)
	assert.ErrorIs(t, err, tasklist.ErrListNotFound)

	out, err := uc.Detail(ctx, alice, child.ID)
	require.NoError(t, err)
	assert.Equal(t, "", out.List.ParentID)

	require.NoError(t, uc.Delete(ctx, alice, errands.ID))
	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n))
	assert.Equal(t, 0, n)
}
