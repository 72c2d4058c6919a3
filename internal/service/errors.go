package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// two cases are indistinguishable to a caller probing for accounts.
var ErrInvalidCredentials = errors.New("invalid email or password")

// NotFoundError reports a resource that is absent or not owned by the
// caller; the two are deliberately indistinguishable.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InUseError blocks a deletion while dependent expenses reference the
// resource. Count is surfaced to the caller.
type InUseError struct {
	Resource string
	Count    int64
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("Cannot delete %s. It is being used by %d expense(s).", e.Resource, e.Count)
}
