package models

import (
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unclassified internal error.
	CodeUnknown Code = "UNKNOWN"

	// CodeNotFound means the game code does not match a live session.
	CodeNotFound Code = "NOT_FOUND"

	// CodeValidation means the request was malformed: missing fields,
	// non-integer values, empty names or item lists.
	CodeValidation Code = "VALIDATION"

	// CodeForbidden means the actor lacks authority for the action:
	// wrong host, or a player id unknown to the session.
	CodeForbidden Code = "FORBIDDEN"

	// CodeInvalidState means the action is not legal in the current
	// phase or status.
	CodeInvalidState Code = "INVALID_STATE"

	// CodeInsufficientBalance means a bid exceeds the player's balance.
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"

	// CodeGenerationFailed means the external template generator failed:
	// timeout, quota, or unusable output.
	CodeGenerationFailed Code = "GENERATION_FAILED"
)

// HTTPStatus maps a code to its HTTP response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation, CodeInsufficientBalance:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidState:
		return http.StatusConflict
	case CodeGenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is a structured failure returned to callers. Every failure is
// detected synchronously and never retried internally; the caller decides
// whether to retry.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError builds an Error with the given code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError builds an Error that preserves an underlying cause for logs
// while keeping Message safe to return to clients.
func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// ErrNotFound is the generic unknown-game error.
func ErrNotFound() *Error {
	return NewError(CodeNotFound, "Game not found")
}
