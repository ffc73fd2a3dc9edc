package reflective

import (
	"fmt"
	"reflect"

	"github.com/scintilla0/go-reflective/member"
)

// initializerName is the conventional no-argument constructor method: a
// declared Init() or Init() error runs right after allocation.
const initializerName = "Init"

// Construct allocates a fresh instance of t and returns a pointer to it.
// Pointer types construct their element. When t declares a no-argument Init
// method it is invoked on the new instance regardless of how the type is
// otherwise meant to be built; an Init that errors or panics fails the
// construction with an InstantiationError wrapping the cause. Interface
// types cannot be instantiated.
func Construct(t reflect.Type) (any, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: no type given", ErrNoConstructor)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Interface {
		return nil, &InstantiationError{Type: t, Err: ErrNotInstantiable}
	}

	instance := reflect.New(t)

	init, err := member.Default.Method(t, initializerName)
	if err != nil || !initializerShape(init.Type) {
		return instance.Interface(), nil
	}

	out, err := init.Call(instance.Interface())
	if err != nil {
		return nil, &InstantiationError{Type: t, Err: err}
	}
	if len(out) == 1 {
		if initErr, _ := out[0].(error); initErr != nil {
			return nil, &InstantiationError{Type: t, Err: initErr}
		}
	}
	return instance.Interface(), nil
}

// ConstructAs is the typed form of Construct for a non-pointer T.
func ConstructAs[T any]() (*T, error) {
	instance, err := Construct(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	typed, ok := instance.(*T)
	if !ok {
		return nil, &InstantiationError{Type: reflect.TypeFor[T](), Err: ErrNotInstantiable}
	}
	return typed, nil
}

// initializerShape accepts the receiver-included signatures func() and
// func() error.
func initializerShape(fn reflect.Type) bool {
	if fn.NumIn() != 1 {
		return false
	}
	switch fn.NumOut() {
	default:
		return false
	case 0:
		return true
	case 1:
		return isErrorType(fn.Out(0))
	}
}
