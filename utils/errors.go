package utils

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrValidation marks missing or malformed request input
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced product, order or cart item that does not exist
	ErrNotFound = errors.New("not found")
)

// StoreError wraps a failed database call
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the operation that produced it. A nil err stays nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: errors.WithStack(err)}
}

// Validationf returns an ErrValidation carrying a client facing message
func Validationf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValidation, format, args...)
}

// NotFoundf returns an ErrNotFound carrying a client facing message
func NotFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

// Message returns the outermost message of a Validationf/NotFoundf error
func Message(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrNotFound} {
		msg = strings.TrimSuffix(msg, ": "+sentinel.Error())
	}
	return msg
}
