// Package apperror carries a classification alongside every application error
// so the transport layer can pick a status without matching on message text.
package apperror

import (
	"errors"
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthorized
	KindNotFound
	KindInsufficientFunds
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindInsufficientFunds:
		return "insufficient_funds"
	default:
		return "internal"
	}
}

// Stable error codes returned to API clients.
const (
	CodeValidation             = "VALIDATION_ERROR"
	CodeMissingFields          = "MISSING_FIELDS"
	CodeInvalidAmount          = "INVALID_AMOUNT"
	CodeInvalidTransactionType = "INVALID_TRANSACTION_TYPE"
	CodeInsufficientFunds      = "INSUFFICIENT_FUNDS"
	CodeEmailExists            = "EMAIL_ALREADY_EXISTS"
	CodeInvalidCredentials     = "INVALID_CREDENTIALS"
	CodeInvalidTokenPayload    = "INVALID_TOKEN_PAYLOAD"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeInvalidPayload         = "INVALID_PAYLOAD"
	CodeInternal               = "INTERNAL_ERROR"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeRateLimited            = "RATE_LIMITED"
)

// Error is an application error tagged with a Kind and a stable Code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(message string) *Error {
	return New(KindValidation, CodeValidation, message)
}

func Conflict(code, message string) *Error {
	return New(KindConflict, code, message)
}

func Unauthorized(code, message string) *Error {
	return New(KindUnauthorized, code, message)
}

func NotFound(code, message string) *Error {
	return New(KindNotFound, code, message)
}

// Internal wraps err with a message that is safe to log but never returned to clients.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: message, Err: err}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// KindOf reports the Kind of err; errors from outside this package are internal.
func KindOf(err error) Kind {
	if ae, ok := As(err); ok {
		return ae.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind and message.
func Is(err error, kind Kind, message string) bool {
	ae, ok := As(err)
	return ok && ae.Kind == kind && ae.Message == message
}
