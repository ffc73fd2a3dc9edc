// Package reflective provides member resolution and reflective access for
// struct values: accessor-preferring field reads and writes, raw member
// location across embedding chains, zero-value instance construction with
// optional initializers, and primitive-kind-aware type matching.
//
// Field access prefers a conventionally named accessor over the storage
// slot: ReadField looks for Name() or GetName() first, WriteField for
// SetName(), so validation or derived-value logic in a hand-written accessor
// keeps running. Only when no usable accessor exists, or the accessor itself
// fails, does the operation degrade to direct slot access, reaching
// unexported fields through a call-scoped unsafe view.
//
// Every call resolves its member fresh; nothing is cached or shared across
// calls. Reflective access to the same member from multiple goroutines must
// be serialized by the caller; access to different members is always safe.
package reflective
