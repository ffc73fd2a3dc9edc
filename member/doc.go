// Package member locates storage slots and callables on struct types by
// walking the embedding chain with Go reflection. A [Locator] resolves a
// field name to the most derived declaration, never descending into the
// configured stop types, and resolves a method name against an exact
// parameter signature with a pointer-receiver fallback.
//
// Handles are produced fresh by every locate call and are never cached, so
// resolution is deterministic for a fixed (type, name) pair.
//
// Key types:
//   - Locator: hierarchy walker with an immutable stop-set
//   - Field: resolved storage slot (name, type, declaring type, index path)
//   - Method: resolved callable with arity- and type-checked invocation
package member
