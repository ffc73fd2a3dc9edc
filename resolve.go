package reflective

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Accessor discovery follows the "method named after the field" convention:
// a reader for field balance is Balance() or GetBalance(), a writer is
// SetBalance(v). Discovery inspects shapes, not declarations, so only
// methods that actually look like accessors are used:
//   - reader: func() T or func() (T, error)
//   - writer: func(T) or func(T) error

// exportedName converts a field name to its exported accessor spelling.
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// readAccessor discovers a conventional reader for name on v. For an
// unexported field the bare exported spelling is preferred over the Get
// prefix; an exported field can only pair with the prefixed form since the
// bare name is taken by the field itself.
func readAccessor(v reflect.Value, name string) (reflect.Value, bool) {
	title := exportedName(name)
	candidates := []string{"Get" + title}
	if title != name {
		candidates = []string{title, "Get" + title}
	}

	for _, candidate := range candidates {
		method := v.MethodByName(candidate)
		if method.IsValid() && readerShape(method.Type()) {
			return method, true
		}
	}
	return reflect.Value{}, false
}

// writeAccessor discovers a conventional writer for name on v.
func writeAccessor(v reflect.Value, name string) (reflect.Value, bool) {
	method := v.MethodByName("Set" + exportedName(name))
	if method.IsValid() && writerShape(method.Type()) {
		return method, true
	}
	return reflect.Value{}, false
}

func readerShape(fn reflect.Type) bool {
	if fn.NumIn() != 0 {
		return false
	}
	switch fn.NumOut() {
	default:
		return false
	case 1:
		return true
	case 2:
		return isErrorType(fn.Out(1))
	}
}

func writerShape(fn reflect.Type) bool {
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

// invokeAccessor calls a bound accessor method, recovering a panicking
// accessor into an error so the caller can degrade to raw slot access.
func invokeAccessor(method reflect.Value, args ...reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("accessor panicked: %v", r)
		}
	}()
	return method.Call(args), nil
}

func isErrorType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	return t.Implements(reflect.TypeFor[error]())
}
