package list

import "reflect"

type Option[T any] func(*List[T])

// WithEqual sets the function used by RemoveValue, Contains, IndexOf and Equal
// to compare elements. A nil eq is ignored.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(l *List[T]) {
		if eq != nil {
			l.eq = eq
		}
	}
}

// WithAbsent sets the predicate that marks an element as absent.
// Absent elements are rejected on insertion and never match a search.
// A nil isAbsent is ignored.
func WithAbsent[T any](isAbsent func(v T) bool) Option[T] {
	return func(l *List[T]) {
		if isAbsent != nil {
			l.isAbsent = isAbsent
		}
	}
}

// absent reports whether v is a nil interface or a nil pointer, map, slice, func, chan or unsafe pointer.
func absent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
