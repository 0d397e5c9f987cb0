package list

import (
	"fmt"

	"go.expect.digital/collections/internal/chain"
)

// Iterator is a bidirectional cursor over a List. The cursor sits between two
// elements: behind, returned by the last call to Next, and ahead, returned by
// the next call to Next.
//
// An Iterator never modifies its list. Modifying the list while an Iterator is
// in use makes the cursor stale: Next and Previous fail with ErrStaleIterator
// until Start or End is called.
type Iterator[T any] struct {
	list   *List[T]
	behind *chain.Node[T]
	ahead  *chain.Node[T]
	mods   uint64
}

// Iterator returns an iterator positioned before the first element.
func (l *List[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{list: l}
	it.Start()

	return it
}

// Start moves the cursor before the first element.
func (it *Iterator[T]) Start() {
	it.behind = nil
	it.ahead = it.list.chain.Front()
	it.mods = it.list.mods
}

// End moves the cursor after the last element.
func (it *Iterator[T]) End() {
	it.behind = it.list.chain.Back()
	it.ahead = nil
	it.mods = it.list.mods
}

// stale reports whether the list changed under the cursor. A stale cursor
// lets go of its nodes.
func (it *Iterator[T]) stale() bool {
	if it.mods == it.list.mods {
		return false
	}

	it.behind = nil
	it.ahead = nil

	return true
}

// HasNext reports whether Next would return an element.
func (it *Iterator[T]) HasNext() bool {
	return !it.stale() && it.ahead != nil
}

// HasPrevious reports whether Previous would return an element.
func (it *Iterator[T]) HasPrevious() bool {
	return !it.stale() && it.behind != nil
}

// Next returns the element ahead of the cursor and moves the cursor past it.
func (it *Iterator[T]) Next() (T, error) { //nolint:ireturn
	if it.stale() {
		return zeroValue[T](), fmt.Errorf("next: %w", ErrStaleIterator)
	}

	if it.ahead == nil {
		return zeroValue[T](), fmt.Errorf("next: %w", ErrNoSuchElement)
	}

	it.behind = it.ahead
	it.ahead = it.ahead.Next()

	return it.behind.Value, nil
}

// Previous returns the element behind the cursor and moves the cursor before it.
func (it *Iterator[T]) Previous() (T, error) { //nolint:ireturn
	if it.stale() {
		return zeroValue[T](), fmt.Errorf("previous: %w", ErrStaleIterator)
	}

	if it.behind == nil {
		return zeroValue[T](), fmt.Errorf("previous: %w", ErrNoSuchElement)
	}

	it.ahead = it.behind
	it.behind = it.behind.Prev()

	return it.ahead.Value, nil
}
