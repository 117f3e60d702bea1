package errors

import (
	"errors"
	"net/http"
)

var (
	// Authentication domain.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongTokenType     = errors.New("token is not a refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserDisabled       = errors.New("user account is disabled")

	// Token codec internals. The service layer collapses all three into
	// ErrInvalidToken before they reach a client; the filter uses the
	// distinction to decide how loudly to log.
	ErrTokenMalformed = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature mismatch")
	ErrTokenExpired   = errors.New("token has expired")

	// Access control. Unauthenticated (no principal) and denied (wrong role)
	// map to different statuses and must stay distinct.
	ErrUnauthenticated = errors.New("authentication required")
	ErrAccessDenied    = errors.New("insufficient permissions")

	// Business modules.
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeEmailTaken     = errors.New("employee email already exists")
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameTaken    = errors.New("department name already exists")
	ErrDepartmentHasEmployees = errors.New("department still has employees assigned")
)

// StatusFor maps a domain error to the HTTP status written at the handler
// boundary. Unknown errors are server faults.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrWrongTokenType),
		errors.Is(err, ErrEmployeeEmailTaken),
		errors.Is(err, ErrDepartmentNameTaken):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenMalformed),
		errors.Is(err, ErrBadSignature),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrUnauthenticated),
		errors.Is(err, ErrUserDisabled):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrDepartmentNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDepartmentHasEmployees):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
