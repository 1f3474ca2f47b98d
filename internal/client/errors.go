package client

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when an authenticated endpoint is
// called before Authenticate has succeeded. Nothing is sent over the
// wire in that case.
var ErrNotAuthenticated = errors.New("not authenticated: call Authenticate first")

// RequestError wraps a transport-level failure (connection refused,
// timeout, DNS error). API-level rejections are never RequestErrors;
// they come back as a Response with Success=false.
type RequestError struct {
	Method string
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
