package list

import (
	"fmt"
	"iter"
	"strings"

	"go.expect.digital/collections/internal/chain"
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// List is a doubly linked list of non-absent elements.
//
// A List is not safe for concurrent use. The zero value is not ready for use,
// create lists with New or NewFunc.
type List[T any] struct {
	chain    *chain.Chain[T]
	eq       func(a, b T) bool
	isAbsent func(v T) bool
	// mods counts structural modifications, iterators compare against it.
	mods uint64
}

// New returns an empty list comparing elements with ==.
// For an interface type T, == panics when both operands hold the same
// incomparable dynamic type such as a slice or map; use NewFunc for such lists.
func New[T comparable](options ...Option[T]) *List[T] {
	return newList(func(a, b T) bool { return a == b }, options)
}

// NewFunc returns an empty list comparing elements with eq.
// A nil eq falls back to reflect.DeepEqual.
func NewFunc[T any](eq func(a, b T) bool, options ...Option[T]) *List[T] {
	return newList(eq, options)
}

func newList[T any](eq func(a, b T) bool, options []Option[T]) *List[T] {
	l := &List[T]{
		chain:    chain.New[T](),
		eq:       eq,
		isAbsent: absent[T],
	}

	for _, f := range options {
		f(l)
	}

	if l.eq == nil {
		l.eq = deepEqual[T]
	}

	return l
}

// derive returns an empty list configured like l.
func (l *List[T]) derive() *List[T] {
	return &List[T]{
		chain:    chain.New[T](),
		eq:       l.eq,
		isAbsent: l.isAbsent,
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.chain.Len() }

// Size is Len.
func (l *List[T]) Size() int { return l.chain.Len() }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.chain.Len() == 0 }

// Append adds v at the back of the list.
func (l *List[T]) Append(v T) error {
	if l.isAbsent(v) {
		return fmt.Errorf("append absent element: %w", ErrInvalidArgument)
	}

	l.chain.PushBack(v)
	l.mods++

	return nil
}

// Prepend adds v at the front of the list.
func (l *List[T]) Prepend(v T) error {
	if l.isAbsent(v) {
		return fmt.Errorf("prepend absent element: %w", ErrInvalidArgument)
	}

	l.chain.PushFront(v)
	l.mods++

	return nil
}

// InsertAt inserts v so that it ends up at index i. The index is clamped:
// i <= 0 prepends and i >= Len() appends.
func (l *List[T]) InsertAt(i int, v T) error {
	if l.isAbsent(v) {
		return fmt.Errorf("insert absent element at %d: %w", i, ErrInvalidArgument)
	}

	switch {
	case i <= 0:
		l.chain.PushFront(v)
	case i >= l.chain.Len():
		l.chain.PushBack(v)
	default:
		l.chain.InsertBefore(v, l.chain.At(i))
	}

	l.mods++

	return nil
}

// find returns the first node holding an element equal to v and its index,
// or nil and -1.
func (l *List[T]) find(v T) (*chain.Node[T], int) {
	if l.isAbsent(v) {
		return nil, -1
	}

	i := 0

	for e := l.chain.Front(); e != nil; e = e.Next() {
		if l.eq(e.Value, v) {
			return e, i
		}

		i++
	}

	return nil, -1
}

// RemoveValue removes the first element equal to v and reports whether one was found.
func (l *List[T]) RemoveValue(v T) bool {
	e, _ := l.find(v)
	if e == nil {
		return false
	}

	l.chain.Remove(e)
	l.mods++

	return true
}

// RemoveFirst removes and returns the first element.
func (l *List[T]) RemoveFirst() (T, error) { //nolint:ireturn
	e := l.chain.Front()
	if e == nil {
		return zeroValue[T](), fmt.Errorf("remove first: %w", ErrEmpty)
	}

	l.mods++

	return l.chain.Remove(e), nil
}

// RemoveLast removes and returns the last element.
func (l *List[T]) RemoveLast() (T, error) { //nolint:ireturn
	e := l.chain.Back()
	if e == nil {
		return zeroValue[T](), fmt.Errorf("remove last: %w", ErrEmpty)
	}

	l.mods++

	return l.chain.Remove(e), nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.chain.Init()
	l.mods++
}

// Contains reports whether the list holds an element equal to v.
func (l *List[T]) Contains(v T) bool {
	e, _ := l.find(v)

	return e != nil
}

// IndexOf returns the index of the first element equal to v, or -1.
func (l *List[T]) IndexOf(v T) int {
	_, i := l.find(v)

	return i
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) { //nolint:ireturn
	if i < 0 || i >= l.chain.Len() {
		return zeroValue[T](), fmt.Errorf("get index %d of %d: %w", i, l.chain.Len(), ErrIndexOutOfRange)
	}

	return l.chain.At(i).Value, nil
}

// First returns the first element.
func (l *List[T]) First() (T, error) { //nolint:ireturn
	e := l.chain.Front()
	if e == nil {
		return zeroValue[T](), fmt.Errorf("first: %w", ErrEmpty)
	}

	return e.Value, nil
}

// Last returns the last element.
func (l *List[T]) Last() (T, error) { //nolint:ireturn
	e := l.chain.Back()
	if e == nil {
		return zeroValue[T](), fmt.Errorf("last: %w", ErrEmpty)
	}

	return e.Value, nil
}

// Reverse returns a new list with the elements in reverse order.
func (l *List[T]) Reverse() *List[T] {
	r := l.derive()

	for e := l.chain.Back(); e != nil; e = e.Prev() {
		r.chain.PushBack(e.Value)
	}

	return r
}

// Copy returns a new list with the same elements in the same order.
func (l *List[T]) Copy() *List[T] {
	c := l.derive()

	for e := l.chain.Front(); e != nil; e = e.Next() {
		c.chain.PushBack(e.Value)
	}

	return c
}

// Equal reports whether other has the same length as l and equal elements
// at every position, compared with l's equality function.
func (l *List[T]) Equal(other *List[T]) bool {
	if other == nil || l.chain.Len() != other.chain.Len() {
		return false
	}

	for a, b := l.chain.Front(), other.chain.Front(); a != nil; a, b = a.Next(), b.Next() {
		if !l.eq(a.Value, b.Value) {
			return false
		}
	}

	return true
}

// String renders the list as [a, b, c].
func (l *List[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for e := l.chain.Front(); e != nil; e = e.Next() {
		if e != l.chain.Front() {
			sb.WriteString(", ")
		}

		fmt.Fprint(&sb, e.Value)
	}

	sb.WriteByte(']')

	return sb.String()
}

// Slice returns the elements from front to back.
func (l *List[T]) Slice() []T {
	s := make([]T, 0, l.chain.Len())

	for e := l.chain.Front(); e != nil; e = e.Next() {
		s = append(s, e.Value)
	}

	return s
}

// All returns an iterator over the elements from front to back.
// The element being yielded may be removed during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.chain.Front(); e != nil; {
			next := e.Next()

			if !yield(e.Value) {
				return
			}

			e = next
		}
	}
}

// Backward returns an iterator over the elements from back to front.
// The element being yielded may be removed during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.chain.Back(); e != nil; {
			prev := e.Prev()

			if !yield(e.Value) {
				return
			}

			e = prev
		}
	}
}
