package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeAnyResponseCountsAsConnected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	res := c.Probe(context.Background(), 1)
	assert.True(t, res.Connected)
	assert.NoError(t, res.Err)
	assert.Equal(t, srv.URL, res.URL)
}

func TestProbeFallsBackToHealthEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		dropConn(t, w)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL)
	res := c.Probe(context.Background(), 1)
	assert.True(t, res.Connected)
}

func TestProbeUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, _ := newTestClient(t, url)
	res := c.Probe(context.Background(), 2)
	assert.False(t, res.Connected)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), url)
	assert.Contains(t, res.Err.Error(), "2 attempt(s)")
}
