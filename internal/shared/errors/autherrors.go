package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/inkfolio/inkfolio/internal/shared/constants"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeRateLimited        ErrorType = "rate_limited"
)

// AuthError is an AppError that carries logging hints for the auth flow.
type AuthError struct {
	*AppError
	// ShouldLog is false for routine failures such as a request without a
	// session.
	ShouldLog bool
	// SecurityEvent marks failures worth counting for brute force detection.
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError does not say which of username or password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// NewSessionInvalidError covers missing, unknown and expired sessions alike.
// It renders as a plain unauthorized response.
func NewSessionInvalidError() *AuthError {
	return &AuthError{
		AppError:      NewUnauthorizedError(constants.ErrMsgUnauthorized, "Session is missing, invalid or expired"),
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

func NewRateLimitedError() *AppError {
	return &AppError{
		Type:    ErrorTypeRateLimited,
		Message: "Too many requests, please try again later",
		Code:    http.StatusTooManyRequests,
	}
}

// GetAuthError extracts AuthError from error chain (supports wrapped errors via errors.As)
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether err deserves a log line. Non-auth errors
// are always logged.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

func IsSecurityEvent(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
