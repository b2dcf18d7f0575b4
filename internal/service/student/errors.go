package student

import (
	"errors"
	"fmt"
)

// Error kinds for errors.Is checks.
var (
	ErrDuplicateEmail = errors.New("email already taken")
	ErrNotFound       = errors.New("student not found")
)

// DuplicateEmailError is returned by Add when another student already
// uses Email.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %s taken", e.Email)
}

func (e *DuplicateEmailError) Is(target error) bool {
	return target == ErrDuplicateEmail
}

// NotFoundError is returned by Delete when no student has ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("student with id %d does not exist", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
