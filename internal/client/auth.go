package client

import (
	"context"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/coopkiosk/backend/internal/models"
)

// DefaultLoginRetries is how many additional attempts Login makes after
// the first one fails with a transient error.
const DefaultLoginRetries = 2

var pinPattern = regexp.MustCompile(`^\d{4}$`)

type loginRequest struct {
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

type loginResponse struct {
	Success   bool          `json:"success"`
	Member    models.Member `json:"member"`
	Message   string        `json:"message"`
	SessionID string        `json:"session_id"`
}

// Login authenticates a member and persists the returned snapshot.
//
// Credentials are validated locally first; validation failures never reach
// the network. Transient failures (5xx, timeout, no response) are retried
// up to retries additional attempts with linear backoff. When every attempt
// died below HTTP, a single reachability probe sharpens the final message.
// All terminal failures come back as a plain human-readable error string.
func (c *Client) Login(ctx context.Context, username, pin string, retries int) (*models.Member, error) {
	username = strings.TrimSpace(username)
	pin = strings.TrimSpace(pin)

	if username == "" {
		return nil, errors.New("Username is required")
	}
	if pin == "" {
		return nil, errors.New("PIN is required")
	}
	if !pinPattern.MatchString(pin) {
		return nil, errors.New("PIN must be exactly 4 digits")
	}
	if retries < 0 {
		retries = 0
	}

	var lastErr *apiError
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			log.Printf("[CLIENT] Login retry %d/%d after: %s", attempt, retries, lastErr.msg)
			select {
			case <-time.After(time.Duration(attempt) * c.backoffUnit()):
			case <-ctx.Done():
				return nil, errors.New(lastErr.msg)
			}
		}

		var out loginResponse
		err := c.do(ctx, http.MethodPost, loginPath, nil, loginRequest{Username: username, PIN: pin}, &out)
		if err == nil {
			if c.store != nil {
				if err := c.store.Set(Snapshot{Member: out.Member, SessionID: out.SessionID}); err != nil {
					return nil, errors.New("Could not save your session. Please try again.")
				}
			}
			return &out.Member, nil
		}

		ae := asAPIError(err)
		if !ae.retryable() {
			return nil, errors.New(loginMessage(ae))
		}
		lastErr = ae
	}

	if lastErr.noResponse() {
		// Retries exhausted without any server answer: tell the user
		// whether the server is unreachable or this was a transient hiccup.
		if res := c.Probe(ctx, 1); !res.Connected {
			return nil, errors.New("Cannot reach the server. Check your internet connection, or the server may be down or the address misconfigured.")
		}
		return nil, errors.New("The connection is unstable right now. Please try again.")
	}
	return nil, errors.New(loginMessage(lastErr))
}

// loginMessage maps an internal error classification to the message the
// login screen shows. The classification itself goes no further.
func loginMessage(ae *apiError) string {
	switch ae.kind {
	case kindFailed:
		return messageOr(ae.msg, "Login failed")
	case kindBadRequest:
		return "Invalid input"
	case kindUnauthorized:
		return "Invalid username or PIN"
	case kindForbidden:
		return "Account inactive"
	case kindNotFound:
		return "User not found"
	case kindServer:
		return "Server error"
	}
	return ae.msg
}

// Logout tells the backend to drop the session, then clears the local
// snapshot regardless of the outcome. A dead network must not trap the
// user in a logged-in state.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, logoutPath, nil, nil, nil); err != nil {
		log.Printf("[CLIENT] Server logout failed (clearing local session anyway): %v", err)
	}
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}
