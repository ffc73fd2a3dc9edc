package reflective

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNoConstructor       = errors.New("no accessible constructor")
	ErrNotInstantiable     = errors.New("type is not instantiable")
	ErrIncorrectValueType  = errors.New("incorrect value type")
	ErrIncorrectReturnType = errors.New("incorrect return type")
	ErrAccessViolation     = errors.New("access violation")
)

// IncorrectTypeError reports a type-compatibility failure on a field
// operation, carrying the offending type and the direction of the mismatch
// (ErrIncorrectValueType or ErrIncorrectReturnType).
type IncorrectTypeError struct {
	Field string
	Type  reflect.Type
	Err   error
}

func (e *IncorrectTypeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v: %s: field %s", e.Err, typeName(e.Type), e.Field)
}

func (e *IncorrectTypeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InstantiationError wraps the underlying cause of a failed construction.
type InstantiationError struct {
	Type reflect.Type
	Err  error
}

func (e *InstantiationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("cannot instantiate %s: %v", typeName(e.Type), e.Err)
}

func (e *InstantiationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
