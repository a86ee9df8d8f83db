package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns an HTTPError for the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status carried by err, 500 when err is not an HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}
