package analysis

// patchState distinguishes the three states a PATCH field can be in
type patchState uint8

const (
	patchUnchanged patchState = iota
	patchCleared
	patchSet
)

// Patch is a transport-agnostic tri-state update value.
// The zero value is Unchanged, so omitted fields in an update request leave the record alone.
//   - Unchanged: field absent from the request
//   - Cleared:   field explicitly null (store NULL)
//   - Set(v):    field present with a value
type Patch[T any] struct {
	state patchState
	value T
}

// Unchanged returns a patch that leaves the field as it is
func Unchanged[T any]() Patch[T] { return Patch[T]{} }

// Cleared returns a patch that sets the field to null
func Cleared[T any]() Patch[T] { return Patch[T]{state: patchCleared} }

// Set returns a patch that sets the field to v
func Set[T any](v T) Patch[T] { return Patch[T]{state: patchSet, value: v} }

func (p Patch[T]) IsUnchanged() bool { return p.state == patchUnchanged }
func (p Patch[T]) IsCleared() bool   { return p.state == patchCleared }
func (p Patch[T]) IsSet() bool       { return p.state == patchSet }

// Value returns the set value and whether the patch is Set
func (p Patch[T]) Value() (T, bool) {
	return p.value, p.state == patchSet
}

// ApplyNullable merges the patch over a nullable field
func (p Patch[T]) ApplyNullable(current *T) *T {
	switch p.state {
	case patchCleared:
		return nil
	case patchSet:
		v := p.value
		return &v
	default:
		return current
	}
}

// Apply merges the patch over a non-nullable field. Cleared yields the zero value,
// which validation then rejects for required fields.
func (p Patch[T]) Apply(current T) T {
	switch p.state {
	case patchCleared:
		var zero T
		return zero
	case patchSet:
		return p.value
	default:
		return current
	}
}
