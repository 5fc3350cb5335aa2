// Package client is the mobile app's side of the cooperative accounts API:
// a single API client owning the session cookie jar, plus the login flow,
// connection prober, pagination composer and persisted session snapshot
// that the screens build on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/coopkiosk/backend/internal/config"
)

// Endpoint paths under the configured base URL.
const (
	loginPath               = "/api/mobile/login/"
	logoutPath              = "/api/mobile/logout/"
	accountPath             = "/api/mobile/account/"
	summaryPath             = "/api/mobile/account/summary/"
	transactionsPath        = "/api/mobile/transactions/"
	balanceTransactionsPath = "/api/mobile/balance-transactions/"
	mobileRootPath          = "/api/mobile/"
	healthPath              = "/health"
)

// Client is the single point of contact with the backend. It owns the
// cookie jar holding the session cookie, so session continuity is client
// state rather than ambient HTTP-stack behavior.
type Client struct {
	baseURL string
	hc      *http.Client
	store   *SessionStore

	// backoff is the linear backoff unit between retry attempts.
	// Zero means the production value of one second; tests shrink it.
	backoff time.Duration
}

// New builds a client for the given configuration. The store may be nil
// when no persisted session is wanted (e.g. the prober CLI path).
func New(cfg config.ClientConfig, store *SessionStore) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.RequestTimeout
	}

	// cookiejar.New only fails on invalid options; nil options cannot fail.
	jar, _ := cookiejar.New(nil)

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		store: store,
	}
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one request and normalizes the outcome. Any HTTP 401 clears
// the persisted session before the error propagates, since it invalidates
// whatever logged-in state the client assumed. Business success is decided
// by the payload-level success flag, not the HTTP status.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &apiError{kind: kindValidation, msg: "Invalid request data"}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return &apiError{kind: kindValidation, msg: "Invalid request"}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return transportError(err)
	}

	// Error payloads are usually {"success": false, "error": "..."} but a
	// proxy may answer with something else entirely; decode best-effort.
	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(data, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.store != nil {
			if err := c.store.Clear(); err != nil {
				log.Printf("[CLIENT] Failed to clear session after 401: %v", err)
			}
		}
		return &apiError{kind: kindUnauthorized, msg: messageOr(env.Error, "Your session has expired. Please log in again.")}
	}

	switch {
	case resp.StatusCode >= 500:
		return &apiError{kind: kindServer, msg: messageOr(env.Error, "Server error. Please try again later.")}
	case resp.StatusCode == http.StatusBadRequest:
		return &apiError{kind: kindBadRequest, msg: messageOr(env.Error, "Invalid input")}
	case resp.StatusCode == http.StatusForbidden:
		return &apiError{kind: kindForbidden, msg: messageOr(env.Error, "Access denied")}
	case resp.StatusCode == http.StatusNotFound:
		return &apiError{kind: kindNotFound, msg: messageOr(env.Error, "Not found")}
	case resp.StatusCode >= 400:
		return &apiError{kind: kindBadRequest, msg: messageOr(env.Error, fmt.Sprintf("Request failed (HTTP %d)", resp.StatusCode))}
	}

	if !env.Success {
		return &apiError{kind: kindFailed, msg: env.Error}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &apiError{kind: kindFailed, msg: "Unexpected server response"}
		}
	}
	return nil
}

// transportError classifies a failure where no response arrived, keeping
// "slow" distinguishable from "unreachable".
func transportError(err error) *apiError {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &apiError{kind: kindTimeout, msg: "The request timed out. Please check your internet connection and try again."}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &apiError{kind: kindTimeout, msg: "The request timed out. Please check your internet connection and try again."}
	}
	return &apiError{kind: kindNetwork, msg: "Could not reach the server. Please check your internet connection."}
}
