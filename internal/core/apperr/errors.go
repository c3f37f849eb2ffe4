// Package apperr defines the error taxonomy shared by services and adapters.
package apperr

import (
	"errors"
	"fmt"
)

const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeAuthorizationDenied    = "AUTHORIZATION_DENIED"
	CodeInternal               = "INTERNAL_ERROR"
)

// AppError is the error type returned across the core boundary.
type AppError struct {
	Code    string
	Message string
	// Fields holds per-field messages for validation failures.
	Fields map[string]string
	// Redirect is the path a denied caller should be sent to.
	Redirect string
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
		Fields:  map[string]string{field: message},
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

// NewAuthenticationRequired carries the login path the caller should be sent to.
func NewAuthenticationRequired(loginPath string) *AppError {
	return &AppError{
		Code:     CodeAuthenticationRequired,
		Message:  "authentication required",
		Redirect: loginPath,
	}
}

// NewAuthorizationDenied carries the read-only view the caller should be sent to.
func NewAuthorizationDenied(redirect string) *AppError {
	return &AppError{
		Code:     CodeAuthorizationDenied,
		Message:  "not allowed",
		Redirect: redirect,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

func IsValidation(err error) bool             { return hasCode(err, CodeValidation) }
func IsNotFound(err error) bool               { return hasCode(err, CodeNotFound) }
func IsAuthenticationRequired(err error) bool { return hasCode(err, CodeAuthenticationRequired) }
func IsAuthorizationDenied(err error) bool    { return hasCode(err, CodeAuthorizationDenied) }

// As returns the *AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
