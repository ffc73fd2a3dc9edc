package reflective

import (
	"reflect"

	"github.com/scintilla0/go-reflective/member"
	"github.com/scintilla0/go-reflective/primitive"
)

var anyType = reflect.TypeFor[any]()

// ReadString reads the named field of obj as a string char sequence.
// See ReadField for the resolution order.
func ReadString(obj any, name string) (string, error) {
	return ReadFieldAs[string](obj, name)
}

// ReadFieldAs reads the named field of obj as a T.
// See ReadField for the resolution order.
func ReadFieldAs[T any](obj any, name string) (T, error) {
	var zero T
	out, err := ReadField(obj, name, reflect.TypeFor[T]())
	if err != nil || out == nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, &IncorrectTypeError{Field: name, Type: reflect.TypeOf(out), Err: ErrIncorrectReturnType}
	}
	return typed, nil
}

// ReadField reads the named field of obj, preferring a conventional read
// accessor over the storage slot. An accessor that exists and succeeds is
// authoritative: its result is returned as-is, with no type check against
// want. Otherwise the slot located on the embedding chain is read directly,
// after verifying its declared type against want; a nil or any want skips
// the verification. A nil obj short-circuits to a nil result.
func ReadField(obj any, name string, want reflect.Type) (any, error) {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return nil, nil
	}

	if out, ok := readViaAccessor(rv, name); ok {
		return out, nil
	}

	slot, err := member.Default.Field(rv.Type(), name)
	if err != nil {
		return nil, err
	}
	if want != nil && want != anyType && !primitive.TypeMatches(slot.Type, want) {
		return nil, &IncorrectTypeError{Field: name, Type: want, Err: ErrIncorrectReturnType}
	}

	field, err := slotValue(rv, slot)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// readViaAccessor reports the accessor's value when one is discovered and
// succeeds. An accessor that errors or panics is treated as unusable and
// resolution degrades to the raw slot.
func readViaAccessor(rv reflect.Value, name string) (any, bool) {
	method, ok := readAccessor(rv, name)
	if !ok {
		return nil, false
	}

	out, err := invokeAccessor(method)
	if err != nil {
		return nil, false
	}
	if len(out) == 2 {
		if accessorErr, _ := out[1].Interface().(error); accessorErr != nil {
			return nil, false
		}
	}
	return out[0].Interface(), true
}
