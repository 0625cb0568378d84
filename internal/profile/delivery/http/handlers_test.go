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
	"personal-task-management/internal/profile"
	"personal-task-management/pkg/log"
)

type fakeUseCase struct {
	out profile.Profile
	err error

	gotScope  model.Scope
	gotUpdate profile.UpdateInput
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope) (profile.DetailOutput, error) {
	f.gotScope = sc
	return profile.DetailOutput{Profile: f.out}, f.err
}

func (f *fakeUseCase) Update(ctx context.Context, sc model.Scope, in profile.UpdateInput) (profile.UpdateOutput, error) {
	f.gotScope, f.gotUpdate = sc, in
	return profile.UpdateOutput{Profile: f.out}, f.err
}

func newRouter(uc profile.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), "", 0)
	RegisterRoutes(r.Group("/api/v1/profile"), New(log.NewNop(), uc), mw)
	return r
}

func call(r http.Handler, method, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set(middleware.HeaderUserID, "alice")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int `json:"error_code"`
	Data      struct {
		Profile map[string]any `json:"profile"`
	} `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestDetailDefaultProfile(t *testing.T) {
	uc := &fakeUseCase{out: profile.Default("alice")}
	r := newRouter(uc)

	w := call(r, http.MethodGet, "", true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", uc.gotScope.UserID)

	p := decode(t, w).Data.Profile
	assert.Equal(t, "alice", p["user_id"])
	assert.Equal(t, true, p["notification_email"])
	assert.Equal(t, "", p["time_zone"])
	assert.NotContains(t, p, "created_at")

	w = call(r, http.MethodGet, "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdate(t *testing.T) {
	saved := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{out: profile.Profile{UserID: "alice", Name: "Alice", DarkMode: true, CreatedAt: saved, UpdatedAt: saved}}
	r := newRouter(uc)

	w := call(r, http.MethodPut, `{"name":"Alice","dark_mode":true,"time_zone":"Europe/Paris"}`, true)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.gotUpdate.Name)
	assert.Equal(t, "Alice", *uc.gotUpdate.Name)
	require.NotNil(t, uc.gotUpdate.DarkMode)
	assert.True(t, *uc.gotUpdate.DarkMode)
	require.NotNil(t, uc.gotUpdate.TimeZone)
	assert.Equal(t, "Europe/Paris", *uc.gotUpdate.TimeZone)
	assert.Nil(t, uc.gotUpdate.Bio)
	assert.Nil(t, uc.gotUpdate.NotificationWeb)

	p := decode(t, w).Data.Profile
	assert.Equal(t, "Alice", p["name"])
	assert.Contains(t, p, "created_at")
}

func TestUpdateValidation(t *testing.T) {
	r := newRouter(&fakeUseCase{})

	w := call(r, http.MethodPut, `{"phone":"`+strings.Repeat("1", 21)+`"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, http.MethodPut, `{"dark_mode":"yes"}`, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorMapping(t *testing.T) {
	tcs := map[string]struct {
		err    error
		status int
	}{
		"bad timezone": {err: profile.ErrInvalidTimeZone, status: http.StatusBadRequest},
		"unexpected":   {err: errors.New("disk on fire"), status: http.StatusInternalServerError},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := newRouter(&fakeUseCase{err: tc.err})

			w := call(r, http.MethodPut, `{"time_zone":"Nowhere/Special"}`, true)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.status, decode(t, w).ErrorCode)
		})
	}
}
