package client

import (
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// Is allows for error checking with errors.Is().
func (e *StatusError) Is(target error) bool {
	_, ok := target.(*StatusError)
	return ok
}

// NotFound reports whether the error is an HTTP 404 response.
func NotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.StatusCode == http.StatusNotFound
}
