// Package apperr defines the structured error codes returned by the API.
package apperr

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error identifier.
type Code string

const (
	CodeInvalidSign      Code = "INVALID_SIGN"
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeInvalidTime      Code = "INVALID_TIME"
	CodeInvalidLatitude  Code = "INVALID_LATITUDE"
	CodeInvalidLongitude Code = "INVALID_LONGITUDE"
	CodeInvalidTimezone  Code = "INVALID_TIMEZONE"
	CodeInvalidLocale    Code = "INVALID_LOCALE"
	CodeInvalidBody      Code = "INVALID_BODY"
	CodeInvalidParam     Code = "INVALID_PARAM"
	CodeUnauthorized     Code = "UNAUTHORIZED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeMethodNotAllowed Code = "METHOD_NOT_ALLOWED"
	CodeConflict         Code = "CONFLICT"
	CodeRateLimited      Code = "RATE_LIMITED"
	CodeInternal         Code = "INTERNAL"
)

// Error is a validation or request error carrying a code and the offending field.
type Error struct {
	Code    Code   `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Invalid builds an Error for a bad input field.
func Invalid(code Code, field, format string, args ...any) *Error {
	return &Error{Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// New builds an Error without a field.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// As reports whether err wraps an *Error and returns it.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err wraps an *Error with the given code.
func Is(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
