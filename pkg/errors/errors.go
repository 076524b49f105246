package errors

import "net/http"

// HTTPError is an error that carries the status code to respond with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ErrInternalServerError is the generic 500 error returned when a failure
// should not leak details to the client.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// ErrBadRequest is the generic 400 error for malformed requests.
var ErrBadRequest = NewHTTPError(http.StatusBadRequest, "bad request")
