package erased

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrEmpty   = errors.New("cursor is empty")
	ErrUnbound = errors.New("location is unbound")
)

// MisuseError is the panic value for operations that are not allowed on
// the current state of a value, e.g. dereferencing an empty cursor.
type MisuseError struct {
	Op  string
	Err error
}

func misuse(op string, err error) *MisuseError {
	return &MisuseError{Op: op, Err: err}
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("erased: %s: %s", e.Op, e.Err)
}

func (e *MisuseError) Unwrap() error {
	return e.Err
}

// ConversionError is the panic value when a Location can not be
// created for a value of type From.
type ConversionError struct {
	From, To reflect.Type
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("erased: can not use %s as location of %s: %s", e.From, e.To, e.Reason)
}
