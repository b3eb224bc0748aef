package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// TransitionError rejects an illegal booking status change. Reason is a
// stable machine-readable code the admin UI switches on.
type TransitionError struct {
	From   Status
	To     Status
	Reason string
	Msg    string
}

func (e TransitionError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

// ChargeError carries the outcome of a failed or incomplete charge attempt.
// RequiresAction distinguishes "customer must authenticate" from a plain
// decline; neither is retried automatically.
type ChargeError struct {
	Status         string
	RequiresAction bool
	Err            error
}

func (e ChargeError) Error() string {
	if e.RequiresAction {
		return "payment requires additional authentication"
	}
	if e.Status != "" {
		return fmt.Sprintf("payment failed: %s", e.Status)
	}
	return "payment failed"
}

func (e ChargeError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsTransition(err error) bool {
	var target TransitionError
	return errors.As(err, &target)
}

func IsCharge(err error) bool {
	var target ChargeError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
