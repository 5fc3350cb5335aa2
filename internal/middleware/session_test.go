package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_CreateResolveDestroy(t *testing.T) {
	redisClient, mock := redismock.NewClientMock()
	sm := NewSessionManager(redisClient, time.Hour)
	ctx := context.Background()

	mock.Regexp().ExpectSet(`session:.+`, `\d+`, time.Hour).SetVal("OK")
	sid, err := sm.Create(ctx, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, sid)

	mock.ExpectGet("session:" + sid).SetVal("7")
	mock.ExpectExpire("session:"+sid, time.Hour).SetVal(true)
	memberID, err := sm.Resolve(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 7, memberID)

	mock.ExpectDel("session:" + sid).SetVal(1)
	assert.NoError(t, sm.Destroy(ctx, sid))
}

func TestSessionMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		memberID, ok := MemberID(r.Context())
		require.True(t, ok)
		assert.Equal(t, 7, memberID)
		assert.Equal(t, "sid-1", r.Context().Value("sessionID"))
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no cookie", func(t *testing.T) {
		redisClient, _ := redismock.NewClientMock()
		sm := NewSessionManager(redisClient, time.Hour)

		r := httptest.NewRequest("GET", "/api/mobile/account/", nil)
		w := httptest.NewRecorder()
		sm.Middleware(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Authentication required"}`, w.Body.String())
	})

	t.Run("unknown session", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		sm := NewSessionManager(redisClient, time.Hour)

		mock.ExpectGet("session:stale").RedisNil()

		r := httptest.NewRequest("GET", "/api/mobile/account/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "stale"})
		w := httptest.NewRecorder()
		sm.Middleware(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session slides expiry", func(t *testing.T) {
		redisClient, mock := redismock.NewClientMock()
		sm := NewSessionManager(redisClient, time.Hour)

		mock.ExpectGet("session:sid-1").SetVal("7")
		mock.ExpectExpire("session:sid-1", time.Hour).SetVal(true)

		r := httptest.NewRequest("GET", "/api/mobile/account/", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sid-1"})
		w := httptest.NewRecorder()
		sm.Middleware(next).ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionCookies(t *testing.T) {
	redisClient, _ := redismock.NewClientMock()
	sm := NewSessionManager(redisClient, time.Hour)

	c := sm.Cookie("abc")
	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, 3600, c.MaxAge)
	assert.True(t, c.HttpOnly)

	exp := sm.ExpiredCookie()
	assert.Equal(t, SessionCookieName, exp.Name)
	assert.Equal(t, -1, exp.MaxAge)
}
