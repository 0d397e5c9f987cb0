package list

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

var _ containers.Container = (*List[int])(nil)

// Empty is IsEmpty under the name containers.Container expects.
func (l *List[T]) Empty() bool { return l.IsEmpty() }

// Values returns the elements from front to back.
func (l *List[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.chain.Len())

	for e := l.chain.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value)
	}

	return values
}

// Sorted returns a new list holding the elements ordered by cmp.
// l is not modified. cmp receives elements of type T.
func (l *List[T]) Sorted(cmp utils.Comparator) *List[T] {
	s := l.derive()

	for _, v := range containers.GetSortedValues(l, cmp) {
		s.chain.PushBack(v.(T)) //nolint:forcetypeassert
	}

	return s
}
