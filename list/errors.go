package list

import "errors"

var (
	// ErrInvalidArgument is returned when an absent element is inserted.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("empty list")
	// ErrIndexOutOfRange is returned by Get for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoSuchElement is returned by an Iterator moved past either end.
	ErrNoSuchElement = errors.New("no such element")
	// ErrStaleIterator is returned by an Iterator whose list was modified after Start or End.
	ErrStaleIterator = errors.New("list modified during iteration")
)
