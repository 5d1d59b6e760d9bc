// Package lookup carries the outcome of a remote lookup that is allowed to fail
// without failing the pipeline around it.
package lookup

// Status tells callers which branch of a Result is populated.
type Status int

const (
	// StatusAbsent means the lookup completed but nothing matched.
	StatusAbsent Status = iota
	// StatusFound means Value holds a match.
	StatusFound
	// StatusFailed means the lookup could not complete; Err holds the cause.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "absent"
	}
}

// Result is the outcome of a single lookup.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

// Found wraps a successful match.
func Found[T any](value T) Result[T] {
	return Result[T]{Value: value, Status: StatusFound}
}

// Absent reports that the provider answered but had no match.
func Absent[T any]() Result[T] {
	return Result[T]{Status: StatusAbsent}
}

// Failed reports that the lookup could not complete.
func Failed[T any](err error) Result[T] {
	return Result[T]{Status: StatusFailed, Err: err}
}

// Ok reports whether the result holds a value.
func (r Result[T]) Ok() bool {
	return r.Status == StatusFound
}

// Get returns the value and whether it is present.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.Status == StatusFound
}
