package homebridge

import (
	"errors"
	"fmt"
)

// ErrNoToken indicates a token refresh was attempted before any login.
var ErrNoToken = errors.New("no session token held")

// AuthError represents a failed login or forced re-login against the
// Homebridge UI API.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("homebridge login failed: status=%d body=%q", e.StatusCode, e.Body)
}

// APIError represents a non-success HTTP response from the Homebridge UI API
// after any token recovery has already been attempted.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homebridge request %s %s failed: status=%d body=%q", e.Method, e.Path, e.StatusCode, e.Body)
}
