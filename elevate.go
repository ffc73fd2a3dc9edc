package reflective

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/scintilla0/go-reflective/member"
)

// slotValue returns a readable, and for pointer instances writable, view of
// the slot on rv. An unaddressable instance is copied into an addressable
// shadow first so unexported slots stay reachable. The elevated view exists
// only for the duration of the enclosing operation and never escapes it.
func slotValue(rv reflect.Value, slot member.Field) (reflect.Value, error) {
	v := rv
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil instance", ErrAccessViolation)
		}
		v = v.Elem()
	}

	if !v.CanAddr() {
		shadow := reflect.New(v.Type()).Elem()
		shadow.Set(v)
		v = shadow
	}

	field, err := v.FieldByIndexErr(slot.Index)
	if err != nil {
		// a nil embedded pointer on the index path
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrAccessViolation, err)
	}
	if !field.CanInterface() {
		field = elevated(field)
	}
	return field, nil
}

// elevated bypasses the read-only flag of an unexported field by re-deriving
// the value from its address.
func elevated(field reflect.Value) reflect.Value {
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
}
