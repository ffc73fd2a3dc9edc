package primitive

import "reflect"

// Matches evaluates whether the runtime type of value is compatible with the
// target type.
//
// When the target is a builtin scalar type, or a pointer to one, the scalar
// kind and its boxed pointer counterpart are treated as the same target: a
// *int value matches both an int and a *int target. The check is strict on
// the kind, so an int value never matches an int64 target even though the
// widening conversion would be legal. Every other target falls back to a
// plain assignability test.
func Matches(value any, target reflect.Type) bool {
	if target == nil {
		return false
	}

	if kind := KindOf(target); kind != 0 {
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return false
			}
			v = v.Elem()
		}
		if !v.IsValid() {
			return false
		}
		return FromReflectType(v.Type()) == kind
	}

	if value == nil {
		return false
	}

	return reflect.TypeOf(value).AssignableTo(target)
}

// TypeMatches is the declared-type form of Matches, used when no value is at
// hand yet: it decides whether a slot declared as src may be handed out where
// dst is expected. Scalar kinds unify with their boxed counterparts on both
// sides, everything else uses assignability.
func TypeMatches(src, dst reflect.Type) bool {
	if src == nil || dst == nil {
		return false
	}

	srcKind, dstKind := KindOf(src), KindOf(dst)
	if srcKind != 0 && dstKind != 0 {
		return srcKind == dstKind
	}

	return src.AssignableTo(dst)
}
