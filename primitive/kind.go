package primitive

import (
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// FromReflectType maps exactly the builtin scalar types to their kind.
// Named types with a scalar underlying kind deliberately do not unify:
// matching is strict on the concrete type, not on the language-level kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case reflect.TypeFor[int]():
		return KindInt
	case reflect.TypeFor[int8]():
		return KindInt8
	case reflect.TypeFor[int16]():
		return KindInt16
	case reflect.TypeFor[int32]():
		return KindInt32
	case reflect.TypeFor[int64]():
		return KindInt64
	case reflect.TypeFor[uint]():
		return KindUint
	case reflect.TypeFor[uint8]():
		return KindUint8
	case reflect.TypeFor[uint16]():
		return KindUint16
	case reflect.TypeFor[uint32]():
		return KindUint32
	case reflect.TypeFor[uint64]():
		return KindUint64
	case reflect.TypeFor[float32]():
		return KindFloat32
	case reflect.TypeFor[float64]():
		return KindFloat64
	case reflect.TypeFor[bool]():
		return KindBool
	case reflect.TypeFor[string]():
		return KindString
	}

	return 0
}

// KindOf unifies a scalar type with its boxed pointer counterpart: both T and
// *T map to the kind of T. Everything else maps to the invalid kind.
func KindOf(rtype reflect.Type) KindEnum {
	if rtype != nil && rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}
	return FromReflectType(rtype)
}
