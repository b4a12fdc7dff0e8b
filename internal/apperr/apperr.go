// Package apperr defines the typed errors the request pipeline can fail
// with. Handlers match on Kind to decide the HTTP response; everything
// else logs the full error server-side.
package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes a pipeline failure
type Kind int

const (
	// KindConfiguration indicates a required setting is missing.
	// Fatal to the request, not the process.
	KindConfiguration Kind = iota
	// KindMalformedRequest indicates an undecodable inbound body
	KindMalformedRequest
	// KindUpstreamRequest indicates the upstream call itself failed
	KindUpstreamRequest
	// KindUpstreamDecode indicates the upstream body did not match the
	// expected shape
	KindUpstreamDecode
	// KindPersistence indicates a database execution failure
	KindPersistence
)

// Error is a pipeline error with a typed Kind
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with no underlying cause
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap attaches a cause to a typed error
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// KindOf reports the Kind of err and whether err is an apperr.Error
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given Kind
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
