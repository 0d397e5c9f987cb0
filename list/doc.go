/*
Package list implements a generic doubly linked list.

The list holds non-absent elements in order and supports insertion and removal at either end,
at an index and by value, plus forward and backward traversal.
An absent element is a nil interface, pointer, map, slice, func, chan or unsafe pointer.

The list is not safe for concurrent access. Distinct lists, including copies, share no state
and can be used from different goroutines.

# Example Usage

## Basic

The following example shows the basic operations of the list.

	func basicExample() {
		l := list.New[int]()

		// Append and prepend never fail for non-nillable element types.
		_ = l.Append(1)
		_ = l.Append(2)
		_ = l.Prepend(0)

		fmt.Println(l, l.Len()) // [0, 1, 2] 3

		// Insertion by index is clamped to the ends.
		_ = l.InsertAt(-5, -1)
		_ = l.InsertAt(99, 3)

		fmt.Println(l) // [-1, 0, 1, 2, 3]

		// Reading by index is not.
		_, err := l.Get(99) // errors.Is(err, list.ErrIndexOutOfRange)

		// Removing a value that is not in the list is a no-op.
		l.RemoveValue(42)

		first, err := l.RemoveFirst()
		if err != nil {
			// Handle list.ErrEmpty.
		}

		fmt.Println(first, l.IndexOf(2), l.Contains(-1)) // -1 2 false
	}

## Traversal

Range over All or Backward, or drive an Iterator in both directions.

	func traversalExample() {
		l := list.New[string]()
		_ = l.Append("a")
		_ = l.Append("b")

		for v := range l.Backward() {
			fmt.Println(v) // b, then a
		}

		it := l.Iterator()

		a, _ := it.Next()     // a
		b, _ := it.Next()     // b
		_, err := it.Next()   // errors.Is(err, list.ErrNoSuchElement)
		b, _ = it.Previous()  // b
		a, _ = it.Previous()  // a
		fmt.Println(a, b, it.HasPrevious()) // a b false

		// Modifying the list invalidates the cursor until Start or End.
		_ = l.Append("c")
		_, err = it.Next() // errors.Is(err, list.ErrStaleIterator)

		it.End()
		c, _ := it.Previous()
		fmt.Println(c) // c
	}

## Custom equality

Element types that are not comparable use NewFunc.

	type Point struct {
		Tags []string
		X, Y int
	}

	func equalityExample() {
		l := list.NewFunc(func(a, b Point) bool { return a.X == b.X && a.Y == b.Y })

		_ = l.Append(Point{X: 1, Y: 2, Tags: []string{"a"}})

		fmt.Println(l.Contains(Point{X: 1, Y: 2})) // true
	}
*/
package list
