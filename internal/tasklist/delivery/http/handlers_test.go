package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-task-management/internal/middleware"
	"personal-task-management/internal/model"
	"personal-task-management/internal/tasklist"
	"personal-task-management/pkg/log"
)

type fakeUseCase struct {
	err error

	gotScope  model.Scope
	gotCreate tasklist.CreateInput
	gotList   tasklist.ListInput
	gotUpdate tasklist.UpdateInput
	gotID     string
}

var sample = tasklist.TaskList{
	ID:        "l1",
	UserID:    "alice",
	Title:     "Inbox",
	CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, in tasklist.CreateInput) (tasklist.CreateOutput, error) {
	f.gotScope, f.gotCreate = sc, in
	return tasklist.CreateOutput{List: sample}, f.err
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, in tasklist.ListInput) (tasklist.ListOutput, error) {
	f.gotScope, f.gotList = sc, in
	child := sample
	child.ID, child.ParentID = "l2", "l1"
	return tasklist.ListOutput{Lists: []tasklist.Node{{List: sample, Children: []tasklist.Node{{List: child}}}}}, f.err
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (tasklist.DetailOutput, error) {
	f.gotScope, f.gotID = sc, id
	return tasklist.DetailOutput{List: sample}, f.err
}

func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, in tasklist.UpdateInput) (tasklist.UpdateOutput, error) {
	f.gotScope, f.gotUpdate = sc, in
	return tasklist.UpdateOutput{List: sample}, f.err
}

func (f *fakeUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	f.gotScope, f.gotID = sc, id
	return f.err
}

func newRouter(uc tasklist.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), "", 0)
	RegisterRoutes(r.Group("/api/v1/task-lists"), New(log.NewNop(), uc), mw)
	return r
}

func call(r http.Handler, method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set(middleware.HeaderUserID, "alice")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestCreate(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	w := call(r, http.MethodPost, "/api/v1/task-lists", `{"title":"Projects","is_folder":true}`, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "alice", uc.gotScope.UserID)
	assert.Equal(t, tasklist.CreateInput{Title: "Projects", IsFolder: true}, uc.gotCreate)

	var data struct {
		List struct {
			ID       string  `json:"id"`
			ParentID *string `json:"parent_id"`
		} `json:"task_list"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "l1", data.List.ID)
	assert.Nil(t, data.List.ParentID)
}

func TestCreateValidation(t *testing.T) {
	r := newRouter(&fakeUseCase{})

	w := call(r, http.MethodPost, "/api/v1/task-lists", `{"description":"no title"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodPost, "/api/v1/task-lists", `{"title":"x"}`, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	w := call(r, http.MethodGet, "/api/v1/task-lists?include_archived=true", "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.gotList.IncludeArchived)

	var data struct {
		Lists []struct {
			ID       string `json:"id"`
			Children []struct {
				ID       string `json:"id"`
				ParentID string `json:"parent_id"`
			} `json:"children"`
		} `json:"task_lists"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	require.Len(t, data.Lists, 1)
	require.Len(t, data.Lists[0].Children, 1)
	assert.Equal(t, "l1", data.Lists[0].Children[0].ParentID)
}

func TestUpdateParentTriState(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	w := call(r, http.MethodPut, "/api/v1/task-lists/l1", `{"title":"Renamed"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "l1", uc.gotUpdate.ID)
	require.NotNil(t, uc.gotUpdate.Title)
	assert.Equal(t, "Renamed", *uc.gotUpdate.Title)
	assert.False(t, uc.gotUpdate.ParentIDSet)

	w = call(r, http.MethodPut, "/api/v1/task-lists/l1", `{"parent_id":null}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.gotUpdate.ParentIDSet)
	assert.Equal(t, "", uc.gotUpdate.ParentID)

	w = call(r, http.MethodPut, "/api/v1/task-lists/l1", `{"parent_id":"f1"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, uc.gotUpdate.ParentIDSet)
	assert.Equal(t, "f1", uc.gotUpdate.ParentID)
}

func TestErrorMapping(t *testing.T) {
	tcs := map[string]struct {
		err    error
		status int
	}{
		"not found":  {err: tasklist.ErrListNotFound, status: http.StatusNotFound},
		"bad parent": {err: tasklist.ErrInvalidParent, status: http.StatusBadRequest},
		"not empty":  {err: tasklist.ErrFolderNotEmpty, status: http.StatusBadRequest},
		"has tasks":  {err: tasklist.ErrListHasTasks, status: http.StatusBadRequest},
		"cycle":      {err: tasklist.ErrCircularReference, status: http.StatusConflict},
		"unexpected": {err: errors.New("disk on fire"), status: http.StatusInternalServerError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := newRouter(&fakeUseCase{err: tc.err})

			w := call(r, http.MethodPut, "/api/v1/task-lists/l1", `{"parent_id":"f1"}`, true)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.status, decode(t, w).ErrorCode)
		})
	}
}

func TestDetailAndDelete(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	w := call(r, http.MethodGet, "/api/v1/task-lists/l1", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "l1", uc.gotID)

	w = call(r, http.MethodDelete, "/api/v1/task-lists/l9", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "l9", uc.gotID)
}
