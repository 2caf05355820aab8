package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

const (
	ErrorTypeTokenExpired ErrorType = "token_expired"
	ErrorTypeTokenInvalid ErrorType = "token_invalid"
)

// AuthError is an AppError carrying logging hints for the auth middleware.
// Routine expirations should not produce log noise, while malformed or
// tampered tokens should.
type AuthError struct {
	*AppError
	ShouldLog     bool
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewTokenExpiredError creates the error for a token past its expiry.
func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: fmt.Sprintf("%s has expired", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "Please login again",
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewTokenInvalidError creates the error for a token that fails verification.
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: fmt.Sprintf("Invalid %s", tokenType),
			Code:    http.StatusUnauthorized,
			Details: "Token is invalid or has been revoked",
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

// ShouldLogAuthError reports whether the auth failure is worth a log line.
// Errors outside the AuthError taxonomy always are.
func ShouldLogAuthError(err error) bool {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr.ShouldLog
	}
	return true
}
