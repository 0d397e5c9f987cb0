package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Iterator_BackAndForth(t *testing.T) {
	t.Parallel()

	it := newStrings(t, "a", "b").Iterator()
	it.Start()

	assert.False(t, it.HasPrevious())
	assert.True(t, it.HasNext())

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	assert.False(t, it.HasNext())
	assert.True(t, it.HasPrevious())

	v, err = it.Previous()
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = it.Previous()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	assert.False(t, it.HasPrevious())
	assert.True(t, it.HasNext())
}

func Test_Iterator_NoSuchElement(t *testing.T) {
	t.Parallel()

	it := newStrings(t, "a").Iterator()

	v, err := it.Previous()
	require.ErrorIs(t, err, ErrNoSuchElement)
	assert.EqualError(t, err, "previous: no such element")
	assert.Empty(t, v)

	_, err = it.Next()
	require.NoError(t, err)

	v, err = it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
	assert.EqualError(t, err, "next: no such element")
	assert.Empty(t, v)

	// a failed move leaves the cursor in place
	v, err = it.Previous()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func Test_Iterator_Empty(t *testing.T) {
	t.Parallel()

	it := New[int]().Iterator()

	assert.False(t, it.HasNext())
	assert.False(t, it.HasPrevious())

	_, err := it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)

	it.End()

	assert.False(t, it.HasNext())
	assert.False(t, it.HasPrevious())

	_, err = it.Previous()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

func Test_Iterator_End(t *testing.T) {
	t.Parallel()

	it := newStrings(t, "a", "b", "c").Iterator()
	it.End()

	assert.False(t, it.HasNext())

	var got []string

	for it.HasPrevious() {
		v, err := it.Previous()
		require.NoError(t, err)

		got = append(got, v)
	}

	assert.Equal(t, []string{"c", "b", "a"}, got)

	it.Start()

	got = got[:0]

	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)

		got = append(got, v)
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func Test_Iterator_ReadOnly(t *testing.T) {
	t.Parallel()

	l := newStrings(t, "a", "b", "c")
	it := l.Iterator()

	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}

	for it.HasPrevious() {
		_, err := it.Previous()
		require.NoError(t, err)
	}

	assertList(t, []string{"a", "b", "c"}, l)
}

func Test_Iterator_Stale(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		mutate func(l *List[string])
	}{
		{name: "append", mutate: func(l *List[string]) { _ = l.Append("d") }},
		{name: "prepend", mutate: func(l *List[string]) { _ = l.Prepend("d") }},
		{name: "insert at", mutate: func(l *List[string]) { _ = l.InsertAt(1, "d") }},
		{name: "remove value", mutate: func(l *List[string]) { l.RemoveValue("b") }},
		{name: "remove first", mutate: func(l *List[string]) { _, _ = l.RemoveFirst() }},
		{name: "remove last", mutate: func(l *List[string]) { _, _ = l.RemoveLast() }},
		{name: "clear", mutate: func(l *List[string]) { l.Clear() }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newStrings(t, "a", "b", "c")
			it := l.Iterator()

			_, err := it.Next()
			require.NoError(t, err)

			tt.mutate(l)

			_, err = it.Next()
			require.ErrorIs(t, err, ErrStaleIterator)
			assert.EqualError(t, err, "next: list modified during iteration")

			_, err = it.Previous()
			require.ErrorIs(t, err, ErrStaleIterator)

			assert.False(t, it.HasNext())
			assert.False(t, it.HasPrevious())
			assert.Nil(t, it.ahead)
			assert.Nil(t, it.behind)

			// restarting re-arms the iterator
			it.Start()

			got := make([]string, 0, l.Len())

			for it.HasNext() {
				v, err := it.Next()
				require.NoError(t, err)

				got = append(got, v)
			}

			assert.Equal(t, l.Slice(), got)
		})
	}
}

func Test_Iterator_NotStale_OnFailedMutation(t *testing.T) {
	t.Parallel()

	l := New[*int]()
	one := 1

	require.NoError(t, l.Append(&one))

	it := l.Iterator()

	require.ErrorIs(t, l.Append(nil), ErrInvalidArgument)
	assert.False(t, l.RemoveValue(nil))

	_, err := l.Get(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	v, err := it.Next()
	require.NoError(t, err)
	assert.Same(t, &one, v)
}

func Test_Iterator_Clear_ReleasesChain(t *testing.T) {
	t.Parallel()

	l := newStrings(t, "a", "b", "c")
	it := l.Iterator()

	_, err := it.Next()
	require.NoError(t, err)

	held := it.ahead

	l.Clear()

	// the node the cursor pointed at no longer reaches the old chain
	assert.Nil(t, held.Next())
	assert.Nil(t, held.Prev())
}
