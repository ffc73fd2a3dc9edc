package member

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	ErrMethodNotFound = errors.New("method not found")
	ErrBadArgument    = errors.New("bad argument")
)

// Method is a resolved reference to a callable: the method name, the
// receiver type it was found on, and the receiver-included func signature.
type Method struct {
	Name string
	Recv reflect.Type
	Type reflect.Type
	Func reflect.Value
}

// LocateMethod resolves name on t using the default locator.
func LocateMethod(t reflect.Type, name string, params ...reflect.Type) (Method, error) {
	return Default.Method(t, name, params...)
}

// Method resolves name to a callable on t with the exact parameter
// signature. The lookup checks t's own method set first; for a non-pointer
// t it then widens to the pointer method set, which covers pointer-receiver
// and promoted methods the narrow lookup misses. Both failing yields
// ErrMethodNotFound.
func (l *Locator) Method(t reflect.Type, name string, params ...reflect.Type) (Method, error) {
	if t != nil {
		if m, ok := t.MethodByName(name); ok && paramsMatch(m.Type, params) {
			return Method{Name: name, Recv: t, Type: m.Type, Func: m.Func}, nil
		}
		if t.Kind() != reflect.Pointer {
			pointer := reflect.PointerTo(t)
			if m, ok := pointer.MethodByName(name); ok && paramsMatch(m.Type, params) {
				return Method{Name: name, Recv: pointer, Type: m.Type, Func: m.Func}, nil
			}
		}
	}
	return Method{}, fmt.Errorf("%w: %s(%s)", ErrMethodNotFound, name, signature(params))
}

// paramsMatch compares the non-receiver parameters of fn against params.
func paramsMatch(fn reflect.Type, params []reflect.Type) bool {
	if fn.NumIn()-1 != len(params) {
		return false
	}
	for i, param := range params {
		if fn.In(i+1) != param {
			return false
		}
	}
	return true
}

func signature(params []reflect.Type) string {
	names := make([]string, len(params))
	for i, param := range params {
		names[i] = typeName(param)
	}
	return strings.Join(names, ", ")
}

// Call invokes the method on recv with the given arguments. It checks the
// argument count and types up front and recovers a panicking callee into an
// error, returning the callee's results as a slice otherwise.
//
// A value-receiver method accepts a pointer recv and vice versa; the value
// is dereferenced or copied into a fresh pointer as needed. Mutations made
// through such a copied receiver are lost to the caller.
func (m Method) Call(recv any, args ...any) (out []any, err error) {
	expected := m.Type.NumIn() - 1
	if len(args) != expected {
		return nil, fmt.Errorf(
			"%w: found %d arguments but expected %d: call %s",
			ErrBadArgument, len(args), expected, m.Name,
		)
	}

	receiver := reflect.ValueOf(recv)
	if !receiver.IsValid() {
		return nil, fmt.Errorf("%w: nil receiver: call %s", ErrBadArgument, m.Name)
	}
	switch {
	case receiver.Type() == m.Recv:
	case m.Recv.Kind() == reflect.Pointer && receiver.Type() == m.Recv.Elem():
		boxed := reflect.New(receiver.Type())
		boxed.Elem().Set(receiver)
		receiver = boxed
	case receiver.Kind() == reflect.Pointer && receiver.Type().Elem() == m.Recv:
		if receiver.IsNil() {
			return nil, fmt.Errorf("%w: nil receiver: call %s", ErrBadArgument, m.Name)
		}
		receiver = receiver.Elem()
	default:
		return nil, fmt.Errorf(
			"%w: receiver is %s, expected %s: call %s",
			ErrBadArgument, typeName(receiver.Type()), typeName(m.Recv), m.Name,
		)
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, receiver)
	for i, arg := range args {
		want := m.Type.In(i + 1)
		if arg == nil {
			in = append(in, reflect.Zero(want))
			continue
		}
		value := reflect.ValueOf(arg)
		if !value.Type().AssignableTo(want) {
			return nil, fmt.Errorf(
				"%w: argument %d is %s but expected %s: call %s",
				ErrBadArgument, i, typeName(value.Type()), typeName(want), m.Name,
			)
		}
		in = append(in, value)
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("call %s: panic: %v", m.Name, r)
		}
	}()

	results := m.Func.Call(in)
	out = make([]any, len(results))
	for i, result := range results {
		out[i] = result.Interface()
	}
	return out, nil
}
