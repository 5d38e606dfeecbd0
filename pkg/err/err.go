package errprocess

import (
	"errors"

	"course_content_service/pkg/logger"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	// KindInternal unexpected failure, surfaced as a generic server error
	KindInternal Kind = iota
	// KindValidation missing or oversized required field, mutation not attempted
	KindValidation
	// KindNotFound referenced entity does not exist
	KindNotFound
	// KindForbidden principal fails the ownership predicate
	KindForbidden
)

// Error carries a message plus a Kind so handlers can map it to a
// status code without string matching.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// KindOf reports the Kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// Set log the message and return it as an internal error
func Set(errMsg string) error {
	logger.Log.Error(errMsg)
	return &Error{kind: KindInternal, msg: errMsg}
}

// Validation build a validation error, not logged (caller fault)
func Validation(msg string) error {
	return &Error{kind: KindValidation, msg: msg}
}

// NotFound build a not-found error
func NotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

// Forbidden build a forbidden error; the message stays generic so no
// ownership detail leaks to the caller
func Forbidden(msg string) error {
	return &Error{kind: KindForbidden, msg: msg}
}
