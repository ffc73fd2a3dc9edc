package primitive_test

import (
	"bytes"
	"io"
	"reflect"
	"testing"

	"github.com/scintilla0/go-reflective/primitive"
	"github.com/stretchr/testify/assert"
)

type fahrenheit int

func TestMatchesScalarTargets(t *testing.T) {
	t.Parallel()

	seven := 7
	wide := int64(7)

	tests := []struct {
		name   string
		value  any
		target reflect.Type
		want   bool
	}{
		{"int against int", seven, reflect.TypeFor[int](), true},
		{"boxed int against int", &seven, reflect.TypeFor[int](), true},
		{"int against boxed int", seven, reflect.TypeFor[*int](), true},
		{"boxed int against boxed int", &seven, reflect.TypeFor[*int](), true},
		{"int against int64", seven, reflect.TypeFor[int64](), false},
		{"boxed int against int64", &seven, reflect.TypeFor[int64](), false},
		{"int64 against int", wide, reflect.TypeFor[int](), false},
		{"boxed int64 against boxed int64", &wide, reflect.TypeFor[*int64](), true},
		{"named int against int", fahrenheit(3), reflect.TypeFor[int](), false},
		{"nil against int", nil, reflect.TypeFor[int](), false},
		{"nil boxed int against int", (*int)(nil), reflect.TypeFor[int](), false},
		{"bool against bool", true, reflect.TypeFor[bool](), true},
		{"bool against string", true, reflect.TypeFor[string](), false},
		{"float64 against float32", 1.5, reflect.TypeFor[float32](), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, primitive.Matches(tt.value, tt.target))
		})
	}
}

func TestMatchesInstanceOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		target reflect.Type
		want   bool
	}{
		{"concrete against satisfied interface", &bytes.Buffer{}, reflect.TypeFor[io.Reader](), true},
		{"concrete against unsatisfied interface", bytes.Buffer{}, reflect.TypeFor[io.Reader](), false},
		{"identical struct types", bytes.Buffer{}, reflect.TypeFor[bytes.Buffer](), true},
		{"named int against its own type", fahrenheit(3), reflect.TypeFor[fahrenheit](), true},
		{"slice against same slice", []string{"a"}, reflect.TypeFor[[]string](), true},
		{"slice against other slice", []string{"a"}, reflect.TypeFor[[]int](), false},
		{"nil against interface", nil, reflect.TypeFor[io.Reader](), false},
		{"anything against nil target", "x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, primitive.Matches(tt.value, tt.target))
		})
	}
}

func TestTypeMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src, dst reflect.Type
		want     bool
	}{
		{"int to int", reflect.TypeFor[int](), reflect.TypeFor[int](), true},
		{"int to boxed int", reflect.TypeFor[int](), reflect.TypeFor[*int](), true},
		{"boxed int to int", reflect.TypeFor[*int](), reflect.TypeFor[int](), true},
		{"int to int64", reflect.TypeFor[int](), reflect.TypeFor[int64](), false},
		{"named int to int", reflect.TypeFor[fahrenheit](), reflect.TypeFor[int](), false},
		{"string to any", reflect.TypeFor[string](), reflect.TypeFor[any](), true},
		{"buffer pointer to reader", reflect.TypeFor[*bytes.Buffer](), reflect.TypeFor[io.Reader](), true},
		{"reader to buffer pointer", reflect.TypeFor[io.Reader](), reflect.TypeFor[*bytes.Buffer](), false},
		{"nil src", nil, reflect.TypeFor[int](), false},
		{"nil dst", reflect.TypeFor[int](), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, primitive.TypeMatches(tt.src, tt.dst))
		})
	}
}
