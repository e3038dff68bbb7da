package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the categories the API exposes.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindGeneration   Kind = "GENERATION"
	KindPersistence  Kind = "PERSISTENCE"
)

// Error is the error type every service operation surfaces to its handler.
// Message is safe to return to clients; the wrapped cause is log-only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StatusCode maps the error kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindGeneration:
		return http.StatusBadGateway
	case KindPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: msg, cause: cause}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Generation(msg string, cause error) *Error {
	return &Error{Kind: KindGeneration, Message: msg, cause: cause}
}

func Persistence(msg string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, cause: cause}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// From returns err as an *Error, wrapping unknown errors as persistence
// failures so handlers never leak internal messages.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Persistence("internal server error", err)
}
