package client

import "errors"

// errKind classifies a failed API call. The kind decides retry eligibility
// and which message template the auth flow picks; only the message string
// crosses into the presentation layer.
type errKind int

const (
	kindValidation   errKind = iota // local input validation, never sent
	kindFailed                      // payload-level failure on a 2xx response
	kindBadRequest                  // HTTP 400
	kindUnauthorized                // HTTP 401
	kindForbidden                   // HTTP 403
	kindNotFound                    // HTTP 404
	kindServer                      // HTTP >= 500
	kindNetwork                     // no response: DNS, refused, reset
	kindTimeout                     // no response within the request timeout
)

type apiError struct {
	kind errKind
	msg  string
}

func (e *apiError) Error() string {
	return e.msg
}

// retryable reports whether another attempt could plausibly succeed.
// Client and validation failures are terminal.
func (e *apiError) retryable() bool {
	switch e.kind {
	case kindServer, kindNetwork, kindTimeout:
		return true
	}
	return false
}

// noResponse reports whether the failure happened below HTTP, with no
// server answer at all.
func (e *apiError) noResponse() bool {
	return e.kind == kindNetwork || e.kind == kindTimeout
}

func asAPIError(err error) *apiError {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae
	}
	return &apiError{kind: kindNetwork, msg: err.Error()}
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
