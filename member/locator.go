package member

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrFieldNotFound = errors.New("field not found")
	ErrNotAStruct    = errors.New("not a struct type")
)

// Field is a resolved reference to a storage slot: the declared field name,
// its type, the struct type that declares it, and the index path from the
// root type down to the declaration.
type Field struct {
	Name     string
	Type     reflect.Type
	Declared reflect.Type
	Index    []int
}

// Locator walks struct embedding chains most-derived first. The stop-set is
// fixed at construction; embedded types found in it are never descended into.
type Locator struct {
	stops map[reflect.Type]struct{}
}

// New creates a Locator that halts at the provided stop types. Pointer stop
// types are reduced to their element, nil entries are ignored.
func New(stops ...reflect.Type) *Locator {
	set := make(map[reflect.Type]struct{}, len(stops))
	for _, stop := range stops {
		if stop = indirect(stop); stop != nil {
			set[stop] = struct{}{}
		}
	}
	return &Locator{stops: set}
}

// Default walks the whole embedding chain without stopping.
var Default = New()

// LocateField resolves name on t using the default locator.
func LocateField(t reflect.Type, name string) (Field, error) {
	return Default.Field(t, name)
}

// Field resolves name to a storage slot on t, which may be a struct type or
// a pointer to one. The walk inspects the declared fields of each level
// before descending into embedded structs in declaration order, so a slot
// redeclared by the outer struct shadows the embedded one. A name absent
// from the whole chain yields ErrFieldNotFound.
func (l *Locator) Field(t reflect.Type, name string) (Field, error) {
	t = indirect(t)
	if t == nil || t.Kind() != reflect.Struct {
		return Field{}, fmt.Errorf("%w: %s", ErrNotAStruct, typeName(t))
	}

	seen := make(map[reflect.Type]struct{})
	if field, ok := l.findField(t, name, nil, seen); ok {
		return field, nil
	}
	return Field{}, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
}

func (l *Locator) findField(t reflect.Type, name string, path []int, seen map[reflect.Type]struct{}) (Field, bool) {
	if _, ok := seen[t]; ok {
		return Field{}, false
	}
	seen[t] = struct{}{}

	// declared slots of this level first, most derived wins
	for i := 0; i < t.NumField(); i++ {
		if field := t.Field(i); field.Name == name {
			return Field{
				Name:     name,
				Type:     field.Type,
				Declared: t,
				Index:    appendIndex(path, i),
			}, true
		}
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.Anonymous {
			continue
		}
		embedded := indirect(field.Type)
		if embedded.Kind() != reflect.Struct {
			continue
		}
		if _, stop := l.stops[embedded]; stop {
			continue
		}
		if found, ok := l.findField(embedded, name, appendIndex(path, i), seen); ok {
			return found, true
		}
	}

	return Field{}, false
}

func appendIndex(path []int, i int) []int {
	index := make([]int, len(path)+1)
	copy(index, path)
	index[len(path)] = i
	return index
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
