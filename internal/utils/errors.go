package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks a request that could not complete.
var ErrNetwork = errors.New("network error")

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsSuccess reports whether code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
