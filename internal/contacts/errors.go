package contacts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound matches every NotFoundError. Store implementations also
	// return it (possibly wrapped) when a record is absent.
	ErrNotFound = errors.New("contact not found")

	// ErrBadResource matches every BadResourceError.
	ErrBadResource = errors.New("bad contact resource")

	// ErrAlreadyExists matches every AlreadyExistsError.
	ErrAlreadyExists = errors.New("contact already exists")
)

// NotFoundError is returned when an operation references an id with no record.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find contact with id: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// BadResourceError is returned when input fails validation. Messages holds
// every violated rule, in rule order.
type BadResourceError struct {
	Message  string
	Messages []string
}

func newBadResource(message string, messages ...string) *BadResourceError {
	return &BadResourceError{Message: message, Messages: messages}
}

func (e *BadResourceError) Error() string {
	if len(e.Messages) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Messages, "; ")
}

func (e *BadResourceError) Is(target error) bool { return target == ErrBadResource }

// AlreadyExistsError is returned when a create targets an id that is already stored.
type AlreadyExistsError struct {
	ID int64
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("contact with id: %d already exists", e.ID)
}

func (e *AlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }
