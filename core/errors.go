package core

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind tags an Error so the HTTP layer can translate it without
// inspecting messages.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "NotFound"
	KindConflict            ErrorKind = "Conflict"
	KindInvalidParameter    ErrorKind = "InvalidParameter"
	KindValidationError     ErrorKind = "ValidationError"
	KindServerError         ErrorKind = "ServerError"
	KindBadSubscriptionData ErrorKind = "BadSubscriptionDataError"
)

// Error is the service error type. Every failure that reaches the HTTP
// boundary is one of these; anything else is wrapped as a ServerError.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(kind ErrorKind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

func NotFound(message string) *Error {
	return NewError(KindNotFound, http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return NewError(KindConflict, http.StatusConflict, message)
}

func InvalidParameter(message string) *Error {
	return NewError(KindInvalidParameter, http.StatusBadRequest, message)
}

func ValidationError(message string) *Error {
	return NewError(KindValidationError, http.StatusBadRequest, message)
}

func ServerError(message string) *Error {
	return NewError(KindServerError, http.StatusInternalServerError, message)
}

func BadSubscriptionData(message string, cause error) *Error {
	return &Error{Kind: KindBadSubscriptionData, Status: http.StatusInternalServerError, Message: message, Cause: cause}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// AsError returns err as an *Error, wrapping unknown errors as ServerError
// so the translator always has a kind and status to work with.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindServerError, Status: http.StatusInternalServerError, Message: err.Error(), Cause: err}
}
