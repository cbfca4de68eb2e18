// services/errors.go - error taxonomy shared by all services
package services

import "errors"

type ErrorKind int

const (
	KindBadRequest ErrorKind = iota + 1
	KindValidation
	KindNotFound
	KindNoResults
	KindForbidden
	KindDuplicate
	KindInternal
)

// Error carries a kind the transport layer maps to a status code. Internal
// errors additionally wrap their cause; the cause is logged, never shown.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NoResults(msg string) *Error {
	return &Error{Kind: KindNoResults, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func Duplicate(msg string) *Error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf classifies any error; unclassified failures count as internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
