package member_test

import (
	"reflect"
	"testing"

	"github.com/scintilla0/go-reflective/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter struct {
	prefix string
}

func (g greeter) Greet(name string) string { return g.prefix + name }

func (g *greeter) SetPrefix(prefix string) { g.prefix = prefix }

func (g greeter) Repeat(times int, sep *string) string {
	out := g.prefix
	for i := 1; i < times; i++ {
		if sep != nil {
			out += *sep
		}
		out += g.prefix
	}
	return out
}

func (g greeter) Explode() string { panic("boom") }

func TestMethodLookup(t *testing.T) {
	t.Parallel()

	t.Run("value receiver", func(t *testing.T) {
		t.Parallel()

		m, err := member.LocateMethod(reflect.TypeFor[greeter](), "Greet", reflect.TypeFor[string]())
		require.NoError(t, err)
		assert.Equal(t, "Greet", m.Name)
		assert.Equal(t, reflect.TypeFor[greeter](), m.Recv)
	})

	t.Run("pointer receiver via widened lookup", func(t *testing.T) {
		t.Parallel()

		m, err := member.LocateMethod(reflect.TypeFor[greeter](), "SetPrefix", reflect.TypeFor[string]())
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[*greeter](), m.Recv)
	})

	t.Run("pointer type finds both receiver flavours", func(t *testing.T) {
		t.Parallel()

		_, err := member.LocateMethod(reflect.TypeFor[*greeter](), "Greet", reflect.TypeFor[string]())
		require.NoError(t, err)
		_, err = member.LocateMethod(reflect.TypeFor[*greeter](), "SetPrefix", reflect.TypeFor[string]())
		require.NoError(t, err)
	})

	t.Run("signature mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := member.LocateMethod(reflect.TypeFor[greeter](), "Greet", reflect.TypeFor[int]())
		require.ErrorIs(t, err, member.ErrMethodNotFound)
		assert.Contains(t, err.Error(), "Greet(int)")
	})

	t.Run("missing method", func(t *testing.T) {
		t.Parallel()

		_, err := member.LocateMethod(reflect.TypeFor[greeter](), "Vanish")
		require.ErrorIs(t, err, member.ErrMethodNotFound)
	})

	t.Run("nil type", func(t *testing.T) {
		t.Parallel()

		_, err := member.LocateMethod(nil, "Greet")
		require.ErrorIs(t, err, member.ErrMethodNotFound)
	})
}

func TestMethodCall(t *testing.T) {
	t.Parallel()

	greet, err := member.LocateMethod(reflect.TypeFor[greeter](), "Greet", reflect.TypeFor[string]())
	require.NoError(t, err)

	t.Run("value receiver", func(t *testing.T) {
		t.Parallel()

		out, err := greet.Call(greeter{prefix: "hi "}, "bob")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "hi bob", out[0])
	})

	t.Run("pointer passed to value receiver", func(t *testing.T) {
		t.Parallel()

		out, err := greet.Call(&greeter{prefix: "yo "}, "ann")
		require.NoError(t, err)
		assert.Equal(t, "yo ann", out[0])
	})

	t.Run("value passed to pointer receiver runs on a copy", func(t *testing.T) {
		t.Parallel()

		set, err := member.LocateMethod(reflect.TypeFor[greeter](), "SetPrefix", reflect.TypeFor[string]())
		require.NoError(t, err)

		g := greeter{prefix: "old"}
		_, err = set.Call(g, "new")
		require.NoError(t, err)
		assert.Equal(t, "old", g.prefix)
	})

	t.Run("nil argument becomes the zero value", func(t *testing.T) {
		t.Parallel()

		repeat, err := member.LocateMethod(
			reflect.TypeFor[greeter](), "Repeat",
			reflect.TypeFor[int](), reflect.TypeFor[*string](),
		)
		require.NoError(t, err)

		out, err := repeat.Call(greeter{prefix: "ha"}, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, "haha", out[0])
	})

	t.Run("wrong arity", func(t *testing.T) {
		t.Parallel()

		_, err := greet.Call(greeter{}, "a", "b")
		require.ErrorIs(t, err, member.ErrBadArgument)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		t.Parallel()

		_, err := greet.Call(greeter{}, 42)
		require.ErrorIs(t, err, member.ErrBadArgument)
	})

	t.Run("nil receiver", func(t *testing.T) {
		t.Parallel()

		_, err := greet.Call(nil, "x")
		require.ErrorIs(t, err, member.ErrBadArgument)
	})

	t.Run("panicking callee is recovered", func(t *testing.T) {
		t.Parallel()

		explode, err := member.LocateMethod(reflect.TypeFor[greeter](), "Explode")
		require.NoError(t, err)

		_, err = explode.Call(greeter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic")
	})
}
