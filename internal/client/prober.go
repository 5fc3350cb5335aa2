package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ProbeResult reports whether the configured server answered at all.
type ProbeResult struct {
	Connected bool
	URL       string
	Err       error
}

// Probe checks transport-level reachability of the configured server,
// independent of authentication state. Any HTTP response, including an
// error status, counts as reachable; only a network-layer failure (DNS,
// refused connection, timeout) does not. Failed attempts back off linearly
// at 1s per attempt number.
func (c *Client) Probe(ctx context.Context, maxAttempts int) ProbeResult {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	result := ProbeResult{URL: c.baseURL}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if c.answers(ctx, mobileRootPath) || c.answers(ctx, healthPath) {
			result.Connected = true
			return result
		}

		if attempt < maxAttempts {
			select {
			case <-time.After(time.Duration(attempt) * c.backoffUnit()):
			case <-ctx.Done():
				attempt = maxAttempts
			}
		}
	}

	result.Err = fmt.Errorf(
		"could not reach %s after %d attempt(s): check your internet connection, make sure the server is running, and verify the server address",
		c.baseURL, maxAttempts)
	return result
}

// answers reports whether a GET to the path produced any HTTP response.
func (c *Client) answers(ctx context.Context, path string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}

func (c *Client) backoffUnit() time.Duration {
	if c.backoff > 0 {
		return c.backoff
	}
	return time.Second
}
