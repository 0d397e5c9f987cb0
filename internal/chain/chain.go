// Package chain implements the node store behind list.List: a doubly linked
// chain of nodes closed into a ring by a sentinel root.
package chain

import "fmt"

// Node represents a chain node.
type Node[V any] struct {
	Value  V
	next   *Node[V]
	prev   *Node[V]
	isRoot bool
}

// Next returns the next node or nil if n is the last node or is no longer in a chain.
func (n *Node[V]) Next() *Node[V] {
	if n.next == nil || n.next.isRoot {
		return nil
	}

	return n.next
}

// Prev returns the previous node or nil if n is the first node or is no longer in a chain.
func (n *Node[V]) Prev() *Node[V] {
	if n.prev == nil || n.prev.isRoot {
		return nil
	}

	return n.prev
}

// Chain represents a doubly linked chain of nodes.
type Chain[V any] struct {
	n    int
	root Node[V]
}

// New returns a new empty chain.
func New[V any]() *Chain[V] {
	c := new(Chain[V])

	c.root.isRoot = true
	c.root.next = &c.root
	c.root.prev = &c.root

	return c
}

// Init empties the chain. Released nodes are severed from each other, so a
// node still referenced elsewhere does not keep the rest of the old chain alive.
func (c *Chain[V]) Init() {
	for e := c.root.next; e != &c.root; {
		next := e.next
		e.next = nil
		e.prev = nil
		e = next
	}

	c.root.next = &c.root
	c.root.prev = &c.root
	c.n = 0
}

// insert links e into the ring right after at and counts it.
func (c *Chain[V]) insert(e, at *Node[V]) *Node[V] {
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	c.n++

	return e
}

// Back returns the node before the root, or nil when the ring holds only the root.
func (c *Chain[V]) Back() *Node[V] {
	if c.root.prev == &c.root {
		return nil
	}

	return c.root.prev
}

// Front returns the node after the root, or nil when the ring holds only the root.
func (c *Chain[V]) Front() *Node[V] {
	if c.root.next == &c.root {
		return nil
	}

	return c.root.next
}

// At returns the node at position i. The scan starts from whichever end is
// closer to i. At panics if i is outside [0, Len()).
func (c *Chain[V]) At(i int) *Node[V] {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("chain: index %d out of range [0, %d)", i, c.n))
	}

	if 2*i <= c.n-1 {
		e := c.root.next
		for ; i > 0; i-- {
			e = e.next
		}

		return e
	}

	e := c.root.prev
	for j := c.n - 1; j > i; j-- {
		e = e.prev
	}

	return e
}

// InsertAfter links a new node holding v right after at and returns it.
func (c *Chain[V]) InsertAfter(v V, at *Node[V]) *Node[V] {
	return c.insert(&Node[V]{Value: v}, at)
}

// InsertBefore links a new node holding v right before at and returns it.
func (c *Chain[V]) InsertBefore(v V, at *Node[V]) *Node[V] {
	return c.insert(&Node[V]{Value: v}, at.prev)
}

// Len returns the number of nodes in the chain, the root excluded.
func (c *Chain[V]) Len() int { return c.n }

// PushBack links a new node holding v between the back node and the root.
func (c *Chain[V]) PushBack(v V) *Node[V] {
	return c.insert(&Node[V]{Value: v}, c.root.prev)
}

// PushFront links a new node holding v between the root and the front node.
func (c *Chain[V]) PushFront(v V) *Node[V] {
	return c.insert(&Node[V]{Value: v}, &c.root)
}

// Remove joins the neighbours of e, detaches e and returns its value.
// e must be a node of c.
func (c *Chain[V]) Remove(e *Node[V]) V { //nolint:ireturn
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil

	c.n--

	return e.Value
}
