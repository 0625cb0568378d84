package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-task-management/internal/middleware"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

const testKey = "secret"

func newTestServer(t *testing.T) (*HTTPServer, *pkgSqlite.DB) {
	t.Helper()
	ctx := context.Background()
	l := log.NewNop()

	db, err := pkgSqlite.Open(ctx, pkgSqlite.Config{Path: filepath.Join(t.TempDir(), "tasks.db")}, l)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(ctx))

	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	srv, err := New(l, Config{
		Logger:      l,
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "production",
		DB:          db,
		InternalKey: testKey,
		DateMath:    dm,
	})
	require.NoError(t, err)
	return srv, db
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func call(t *testing.T, srv *HTTPServer, method, path, user string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderInternalKey, testKey)
	if user != "" {
		req.Header.Set(middleware.HeaderUserID, user)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

type idResp struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id"`
	Level    int     `json:"level"`
}

func createList(t *testing.T, srv *HTTPServer, user, title string) string {
	t.Helper()
	code, env := call(t, srv, http.MethodPost, "/api/v1/task-lists", user, map[string]any{"title": title})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var out struct {
		List idResp `json:"task_list"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out.List.ID
}

func createTask(t *testing.T, srv *HTTPServer, user, listID, parentID, title string) idResp {
	t.Helper()
	body := map[string]any{"title": title}
	if parentID != "" {
		body["parent_id"] = parentID
	}
	code, env := call(t, srv, http.MethodPost, "/api/v1/task-lists/"+listID+"/tasks", user, body)
	require.Equal(t, http.StatusCreated, code, env.Message)
	var out struct {
		Task idResp `json:"task"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out.Task
}

func getTask(t *testing.T, srv *HTTPServer, user, id string) (int, idResp) {
	t.Helper()
	code, env := call(t, srv, http.MethodGet, "/api/v1/tasks/"+id, user, nil)
	var out struct {
		Task idResp `json:"task"`
	}
	if code == http.StatusOK {
		require.NoError(t, json.Unmarshal(env.Data, &out))
	}
	return code, out.Task
}

func TestNew(t *testing.T) {
	l := log.NewNop()
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	_, err = New(l, Config{Port: 8080, Mode: gin.TestMode, DateMath: dm})
	assert.EqualError(t, err, "database is required")

	_, err = New(l, Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")
}

func TestSystemRoutes(t *testing.T) {
	srv, db := newTestServer(t)

	for _, path := range []string{"/health", "/live", "/ready"} {
		code, env := call(t, srv, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, code, path)
		assert.Equal(t, 0, env.ErrorCode, path)
	}

	require.NoError(t, db.Close())
	code, _ := call(t, srv, http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)

	code, _ := call(t, srv, http.MethodGet, "/api/v1/task-lists", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/task-lists", nil)
	req.Header.Set(middleware.HeaderUserID, "u1")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTaskTreeFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	const user = "u1"

	listID := createList(t, srv, user, "Inbox")
	a := createTask(t, srv, user, listID, "", "A")
	b := createTask(t, srv, user, listID, a.ID, "B")
	c := createTask(t, srv, user, listID, b.ID, "C")
	assert.Equal(t, 0, a.Level)
	assert.Equal(t, 1, b.Level)
	assert.Equal(t, 2, c.Level)

	// A under its own grandchild is a cycle.
	code, _ := call(t, srv, http.MethodPut, "/api/v1/tasks/"+a.ID, user, map[string]any{"parent_id": c.ID})
	assert.Equal(t, http.StatusConflict, code)

	// Unknown parent.
	code, _ = call(t, srv, http.MethodPut, "/api/v1/tasks/"+a.ID, user, map[string]any{"parent_id": "missing"})
	assert.Equal(t, http.StatusBadRequest, code)

	// Lists are private.
	code, _ = getTask(t, srv, "u2", a.ID)
	assert.Equal(t, http.StatusNotFound, code)

	// Deleting B keeps C, which moves up under A.
	code, _ = call(t, srv, http.MethodPost, "/api/v1/tasks/"+b.ID+"/delete-keep-children", user, nil)
	require.Equal(t, http.StatusOK, code)

	code, got := getTask(t, srv, user, c.ID)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, a.ID, *got.ParentID)
	assert.Equal(t, 1, got.Level)

	// Cascading delete of A takes C with it.
	code, _ = call(t, srv, http.MethodDelete, "/api/v1/tasks/"+a.ID, user, nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = getTask(t, srv, user, c.ID)
	assert.Equal(t, http.StatusNotFound, code)

	code, env := call(t, srv, http.MethodGet, "/api/v1/task-lists/"+listID+"/tasks", user, nil)
	require.Equal(t, http.StatusOK, code)
	var listed struct {
		Tasks []idResp `json:"tasks"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	assert.Empty(t, listed.Tasks)
}

func TestStatsRoutes(t *testing.T) {
	srv, _ := newTestServer(t)
	const user = "u1"

	listID := createList(t, srv, user, "Inbox")
	createTask(t, srv, user, listID, "", "A")
	createTask(t, srv, user, listID, "", "B")

	code, env := call(t, srv, http.MethodGet, "/api/v1/stats/tasks/weekly", user, nil)
	require.Equal(t, http.StatusOK, code)
	var days []struct {
		CreatedCount int `json:"created_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &days))
	require.Len(t, days, 7)
	assert.Equal(t, 2, days[6].CreatedCount)

	code, env = call(t, srv, http.MethodGet, "/api/v1/stats/tasks/monthly", user, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &days))
	assert.Len(t, days, 30)
}

func TestProfileRoutes(t *testing.T) {
	srv, _ := newTestServer(t)
	const user = "u1"

	type profileData struct {
		Profile struct {
			UserID   string `json:"user_id"`
			Name     string `json:"name"`
			TimeZone string `json:"time_zone"`
		} `json:"profile"`
	}

	code, env := call(t, srv, http.MethodGet, "/api/v1/profile", user, nil)
	require.Equal(t, http.StatusOK, code)
	var got profileData
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, user, got.Profile.UserID)
	assert.Equal(t, "", got.Profile.TimeZone)

	code, _ = call(t, srv, http.MethodPut, "/api/v1/profile", user, map[string]any{"time_zone": "Not/AZone"})
	assert.Equal(t, http.StatusBadRequest, code)

	const tz = "Pacific/Kiritimati"
	code, env = call(t, srv, http.MethodPut, "/api/v1/profile", user, map[string]any{"name": "Ana", "time_zone": tz})
	require.Equal(t, http.StatusOK, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Ana", got.Profile.Name)
	assert.Equal(t, tz, got.Profile.TimeZone)

	// Stats days follow the saved timezone.
	listID := createList(t, srv, user, "Inbox")
	createTask(t, srv, user, listID, "", "A")

	code, env = call(t, srv, http.MethodGet, "/api/v1/stats/tasks/weekly", user, nil)
	require.Equal(t, http.StatusOK, code)
	var days []struct {
		Date         string `json:"date"`
		CreatedCount int    `json:"created_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &days))
	require.Len(t, days, 7)
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	assert.Equal(t, time.Now().In(loc).Format("2006-01-02"), days[6].Date)
	assert.Equal(t, 1, days[6].CreatedCount)

	code, _ = call(t, srv, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
