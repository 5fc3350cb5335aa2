package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLocalValidation(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		pin      string
		wantErr  string
	}{
		{"empty username", "", "1234", "Username is required"},
		{"whitespace username", "   ", "1234", "Username is required"},
		{"empty pin", "juan", "", "PIN is required"},
		{"short pin", "juan", "123", "PIN must be exactly 4 digits"},
		{"long pin", "juan", "12345", "PIN must be exactly 4 digits"},
		{"non-numeric pin", "juan", "12ab", "PIN must be exactly 4 digits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Login(ctx, tc.username, tc.pin, DefaultLoginRetries)
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "validation failures must never reach the network")
}

func TestLoginRetriesTransientThenSucceeds(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&hits, 1)
		if n <= 2 {
			writeJSON(w, http.StatusInternalServerError, `{"success": false, "error": "temporarily down"}`)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "coop_sessionid", Value: "sid-9", Path: "/"})
		writeJSON(w, http.StatusOK, `{"success": true, "message": "Welcome back, Juan!", "session_id": "sid-9", "member": `+memberJSON+`}`)
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv.URL)

	member, err := c.Login(context.Background(), "juan", "1234", DefaultLoginRetries)
	require.NoError(t, err)
	assert.Equal(t, "Juan", member.FirstName)
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))

	snap, ok, err := store.Get()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "sid-9", snap.SessionID)
}

func TestLoginTerminalStatusesNotRetried(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"bad request", http.StatusBadRequest, `{"success": false, "error": "PIN is required"}`, "Invalid input"},
		{"wrong pin", http.StatusUnauthorized, `{"success": false, "error": "Invalid PIN. Please try again."}`, "Invalid username or PIN"},
		{"inactive account", http.StatusForbidden, `{"success": false, "error": "Account is inactive"}`, "Account inactive"},
		{"unknown user", http.StatusNotFound, `{"success": false, "error": "User not found or account is inactive"}`, "User not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var hits int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				writeJSON(w, tc.status, tc.body)
			}))
			defer srv.Close()

			c, _ := newTestClient(t, srv.URL)
			_, err := c.Login(context.Background(), "juan", "1234", DefaultLoginRetries)
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, err.Error())
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "terminal failures must not be retried")
		})
	}
}

func TestLoginServerErrorAfterRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		writeJSON(w, http.StatusInternalServerError, `{"success": false, "error": "boom"}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "juan", "1234", DefaultLoginRetries)
	require.Error(t, err)
	assert.Equal(t, "Server error", err.Error())
	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestLoginPayloadFailureFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"success": false}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "juan", "1234", 0)
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestLoginUnreachableServer(t *testing.T) {
	var posts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			atomic.AddInt32(&posts, 1)
		}
		dropConn(t, w)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "juan", "1234", DefaultLoginRetries)
	require.Error(t, err)
	assert.Equal(t, "Cannot reach the server. Check your internet connection, or the server may be down or the address misconfigured.", err.Error())
	assert.Equal(t, int32(3), atomic.LoadInt32(&posts))
}

func TestLoginUnstableConnection(t *testing.T) {
	// Login attempts die on the wire but the reachability probe gets an
	// answer, so the failure reads as transient rather than "server down".
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			dropConn(t, w)
			return
		}
		writeJSON(w, http.StatusNotFound, `{"success": false, "error": "Not found"}`)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Login(context.Background(), "juan", "1234", DefaultLoginRetries)
	require.Error(t, err)
	assert.Equal(t, "The connection is unstable right now. Please try again.", err.Error())
}

func TestLogoutClearsLocalSessionEvenWhenServerFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"success": false, "error": "boom"}`)
	}))
	defer srv.Close()

	c, store := newTestClient(t, srv.URL)
	require.NoError(t, store.Set(Snapshot{SessionID: "sid-1"}))

	require.NoError(t, c.Logout(context.Background()))

	_, ok, err := store.Get()
	require.NoError(t, err)
	assert.False(t, ok)
}
