package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Handlers map these onto HTTP status
// codes in one place instead of deciding per endpoint.

// NotFoundError marks a missing entity or a missing parent reference.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func NotFound(format string, args ...any) error {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ConflictError marks a write that would violate a uniqueness invariant.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// UnauthorizedError marks a failed credential check.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string { return e.Msg }

func Unauthorized(format string, args ...any) error {
	return &UnauthorizedError{Msg: fmt.Sprintf(format, args...)}
}

func IsUnauthorized(err error) bool {
	var u *UnauthorizedError
	return errors.As(err, &u)
}

// ValidationError marks a request rejected before any store write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
