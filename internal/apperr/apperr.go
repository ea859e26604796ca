// Package apperr carries the request-level error taxonomy. Services return
// these; the HTTP layer maps them to status codes without leaking storage
// details for anything unclassified.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) error      { return &Error{Kind: KindInvalidArgument, Msg: msg} }
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &Error{Kind: KindForbidden, Msg: msg} }
func Conflict(msg string) error     { return &Error{Kind: KindConflict, Msg: msg} }
func NotFound(msg string) error     { return &Error{Kind: KindNotFound, Msg: msg} }

func Internal(err error) error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// KindOf reports the taxonomy kind of err, KindInternal for anything
// unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the caller-safe message for err. Unclassified errors get a
// generic message so persistence details never reach the client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Msg
	}
	return "Internal server error"
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
