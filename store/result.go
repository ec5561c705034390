package store

// Kind tags the outcome of a store operation.
type Kind int

const (
	KindFound Kind = iota + 1
	KindCreated
	KindUpdated
	KindConflict
	KindNotFound
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindFound:
		return "found"
	case KindCreated:
		return "created"
	case KindUpdated:
		return "updated"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Result is the outcome of a store operation. Value is set for KindFound,
// KindCreated and KindUpdated; Err is set for KindInvalid only.
type Result[T any] struct {
	Kind  Kind
	Value T
	Err   *ValidationError
}

// OK reports whether the operation produced a value.
func (r Result[T]) OK() bool {
	return r.Kind == KindFound || r.Kind == KindCreated || r.Kind == KindUpdated
}

func found[T any](v T) Result[T] {
	return Result[T]{Kind: KindFound, Value: v}
}

func created[T any](v T) Result[T] {
	return Result[T]{Kind: KindCreated, Value: v}
}

func updated[T any](v T) Result[T] {
	return Result[T]{Kind: KindUpdated, Value: v}
}

func conflict[T any]() Result[T] {
	return Result[T]{Kind: KindConflict}
}

func notFound[T any]() Result[T] {
	return Result[T]{Kind: KindNotFound}
}

func invalid[T any](message string) Result[T] {
	return Result[T]{Kind: KindInvalid, Err: &ValidationError{Message: message}}
}
