package reflective

import (
	"fmt"
	"reflect"

	"github.com/scintilla0/go-reflective/member"
	"github.com/scintilla0/go-reflective/primitive"
)

// WriteField writes value into the named field of obj, preferring a
// conventional write accessor over the storage slot. On the accessor path
// the setter signature is the authority: a value the parameter cannot hold
// fails with ErrIncorrectValueType and no fallback is attempted. Only a
// missing, unshaped, erroring or panicking setter degrades resolution to the
// raw slot, where the value is checked against the slot's declared type
// before anything is written. A nil obj is a no-op; writing a slot through a
// non-pointer obj would mutate a copy, so it is refused with
// ErrAccessViolation.
func WriteField(obj any, name string, value any) error {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return nil
	}
	value = normalizeNil(value)

	if method, ok := writeAccessor(rv, name); ok {
		param := method.Type().In(0)
		if err := checkAssignable(value, param, name); err != nil {
			return err
		}
		if done := writeViaAccessor(method, value, param); done {
			return nil
		}
	}

	slot, err := member.Default.Field(rv.Type(), name)
	if err != nil {
		return err
	}
	if value == nil {
		if !nilable(slot.Type) {
			return &IncorrectTypeError{Field: name, Type: slot.Type, Err: ErrIncorrectValueType}
		}
	} else if slot.Type != anyType && !primitive.Matches(value, slot.Type) {
		return &IncorrectTypeError{Field: name, Type: reflect.TypeOf(value), Err: ErrIncorrectValueType}
	}

	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("%w: pass a pointer instance to write field %s", ErrAccessViolation, name)
	}
	field, err := slotValue(rv, slot)
	if err != nil {
		return err
	}
	return setSlot(field, value, name)
}

// writeViaAccessor invokes the setter and reports whether the write is done.
// An erroring or panicking setter leaves the write to the raw slot path.
func writeViaAccessor(method reflect.Value, value any, param reflect.Type) bool {
	out, err := invokeAccessor(method, valueFor(value, param))
	if err != nil {
		return false
	}
	if len(out) == 1 {
		if accessorErr, _ := out[0].Interface().(error); accessorErr != nil {
			return false
		}
	}
	return true
}

// setSlot stores value into the slot view, boxing or unboxing one pointer
// level when the type matcher unified the two representations.
func setSlot(field reflect.Value, value any, name string) error {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return nil
	}

	incoming := reflect.ValueOf(value)
	switch {
	case incoming.Type().AssignableTo(field.Type()):
	case incoming.Kind() == reflect.Pointer && incoming.Type().Elem() == field.Type():
		incoming = incoming.Elem()
	case field.Kind() == reflect.Pointer && incoming.Type() == field.Type().Elem():
		boxed := reflect.New(incoming.Type())
		boxed.Elem().Set(incoming)
		incoming = boxed
	default:
		return &IncorrectTypeError{Field: name, Type: incoming.Type(), Err: ErrIncorrectValueType}
	}
	field.Set(incoming)
	return nil
}

// checkAssignable verifies value against the setter parameter type.
func checkAssignable(value any, want reflect.Type, field string) error {
	if value == nil {
		if !nilable(want) {
			return &IncorrectTypeError{Field: field, Type: want, Err: ErrIncorrectValueType}
		}
		return nil
	}
	vt := reflect.TypeOf(value)
	if !vt.AssignableTo(want) {
		return &IncorrectTypeError{Field: field, Type: vt, Err: ErrIncorrectValueType}
	}
	return nil
}

// normalizeNil collapses a typed nil pointer into an untyped nil so both
// spell "absent value" the same way downstream.
func normalizeNil(value any) any {
	if value == nil {
		return nil
	}
	if v := reflect.ValueOf(value); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return value
}

func valueFor(value any, want reflect.Type) reflect.Value {
	if value == nil {
		return reflect.Zero(want)
	}
	return reflect.ValueOf(value)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	default:
		return false
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
}
