package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid helpscout configuration")

	// Remote conditions reported with a decodable status body
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorizedKey     = errors.New("unauthorized API key")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServiceUnavailable is returned once every retry attempt saw a 503
	ErrServiceUnavailable = errors.New("service unavailable reported by helpscout service")
	// ErrInvalidServerResponse indicates a non-JSON body on a status we do not retry
	ErrInvalidServerResponse = errors.New("invalid server response")
	// ErrUnexpectedStatus indicates a JSON body on a status outside the documented set
	ErrUnexpectedStatus = errors.New("unexpected status code")

	// Local and transport failures
	ErrIO               = errors.New("io error")
	ErrRequest          = errors.New("request error")
	ErrRequestURL       = errors.New("invalid request url")
	ErrRequestURLEncode = errors.New("request url encode error")
	ErrJSONParse        = errors.New("json parse error")
)

// APIError represents a classified Help Scout API response
type APIError struct {
	StatusCode int
	Status     Status
	Body       string

	kind error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Status.Error != "" {
		return fmt.Sprintf("helpscout API error: %s: %s", e.kind, e.Status.Error)
	}
	return fmt.Sprintf("helpscout API error: %s (status %d)", e.kind, e.StatusCode)
}

// Unwrap returns the sentinel the response was classified as
func (e *APIError) Unwrap() error {
	return e.kind
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the API asked us to slow down
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// statusErrors maps documented status codes to their sentinel
var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorizedKey,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrUserNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}
