package parleysdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/parleyhq/parley/pkg/httpx"
)

// Machine-readable error codes returned in Parley error envelopes. Clients
// should branch on these, never on the human-readable message.
const (
	ErrorCodeAuthRequired  = "AUTH_REQUIRED"
	ErrorCodeInvalidToken  = "INVALID_TOKEN"
	ErrorCodeExpiredToken  = "EXPIRED_TOKEN"
	ErrorCodeInvalidAPIKey = "INVALID_API_KEY"
	ErrorCodeExpiredAPIKey = "EXPIRED_API_KEY"
	ErrorCodeForbidden     = "FORBIDDEN"
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeConflict      = "CONFLICT"
	ErrorCodeRateLimited   = "RATE_LIMITED"
	ErrorCodeInternal      = "INTERNAL_ERROR"
)

// APIError is Parley's wire error envelope. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the SDK client (to represent failed requests).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "INVALID_TOKEN")
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":    e.Code,
		"message": e.Message,
	})
}

// Predefined errors for every rejection the API hands out. Handlers write
// these directly so the same condition always produces the same envelope.
var (
	// ErrAuthRequired is returned when a request carries no credentials at all.
	ErrAuthRequired = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Message:    "authentication required",
	}

	// ErrInvalidToken is returned when a bearer token is malformed, has a bad
	// signature, or is otherwise unusable.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidToken,
		Message:    "the access token is invalid",
	}

	// ErrExpiredToken is returned when a correctly-signed bearer token has
	// passed its expiry. Clients should refresh and retry.
	ErrExpiredToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeExpiredToken,
		Message:    "the access token has expired",
	}

	// ErrInvalidAPIKey is returned when an API key is unknown or revoked.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidAPIKey = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidAPIKey,
		Message:    "the API key is invalid",
	}

	// ErrExpiredAPIKey is returned when an API key exists but has passed its
	// expiry date.
	ErrExpiredAPIKey = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeExpiredAPIKey,
		Message:    "the API key has expired",
	}

	// ErrAPIKeyRequired is returned when a permission-gated route is hit by
	// an API-key identity that somehow has no key record attached.
	ErrAPIKeyRequired = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "API key required",
	}

	// ErrPermissionDenied is returned when an API key lacks the permission a
	// route requires.
	ErrPermissionDenied = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "insufficient permissions",
	}

	// ErrForbidden is returned when an authenticated user's role does not
	// grant access to the route.
	ErrForbidden = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "access denied",
	}

	// ErrSessionRequired is returned when an API key is used on a route that
	// only logged-in users may call, such as API key management.
	ErrSessionRequired = &APIError{
		StatusCode: http.StatusForbidden,
		Code:       ErrorCodeForbidden,
		Message:    "session authentication required",
	}

	// ErrInvalidCredentials is returned on login with a wrong email or
	// password. Which one was wrong is not disclosed.
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Message:    "invalid email or password",
	}

	// ErrInvalidBody is returned when the request body cannot be decoded.
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeValidation,
		Message:    "invalid request body",
	}

	// ErrNotFound is returned when the requested resource does not exist or
	// belongs to another user.
	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Code:       ErrorCodeNotFound,
		Message:    "resource not found",
	}

	// ErrConflict is returned when a create collides with an existing
	// resource, e.g. a duplicate user email.
	ErrConflict = &APIError{
		StatusCode: http.StatusConflict,
		Code:       ErrorCodeConflict,
		Message:    "resource already exists",
	}

	// ErrServerError is returned for unexpected internal failures, including
	// credential store errors during authentication.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeInternal,
		Message:    "internal server error",
	}
)

// NewAPIError creates an APIError with a custom message. Useful for
// validation failures that want to name the offending field.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// parseErrorResponse parses an HTTP error response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Code != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Code,
			Message:    errResp.Message,
		}
	}

	// Fallback: generic error from the status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeInternal,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
