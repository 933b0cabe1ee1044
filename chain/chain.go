package chain

import (
	"encoding/json"
	"fmt"
	"io"
)

// Chain threads a slice through successive [Engine] operations.
//
// Shape-preserving methods replace the slice held by the chain and return the
// same *Chain, so a chain is a builder rather than an immutable value:
//
//	c := chain.Of(4, 1, 3, 2)
//	c.Where(func(n int) bool { return n > 1 }).Sort(chain.Ascending[int]())
//	c.ToList() // → [2 3 4]
//
// The slices passed in by the caller are copied or read, never modified.
// Methods that can fail leave the held slice untouched when they do.
type Chain[T any] struct {
	engine Engine[T]
	items  []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From creates a Chain over a copy of items.
func From[T any](items []T) *Chain[T] {
	return &Chain[T]{engine: NewEngine[T](), items: clone(items)}
}

// Of creates a Chain from a variadic list of items (copied).
func Of[T any](items ...T) *Chain[T] { return From(items) }

// Empty creates a Chain with no elements.
func Empty[T any]() *Chain[T] {
	return &Chain[T]{engine: NewEngine[T](), items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Output
// ─────────────────────────────────────────────────────────────────────────────

// ToList returns a copy of the current elements.
func (c *Chain[T]) ToList() []T { return clone(c.items) }

// MarshalJSON encodes the current elements as a JSON array.
func (c *Chain[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns the JSON form of the current elements. It implements
// [fmt.Stringer].
func (c *Chain[T]) String() string {
	b, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Tap calls fn(c) for side effects (debugging, logging) and returns c.
func (c *Chain[T]) Tap(fn func(*Chain[T])) *Chain[T] {
	fn(c)
	return c
}

// Dump writes the chain's String form and a newline to w and returns c.
func (c *Chain[T]) Dump(w io.Writer) *Chain[T] {
	fmt.Fprintln(w, c.String())
	return c
}

// Each calls action for every element, in order. The chain's slice is not
// replaced; only the action may change the elements themselves.
func (c *Chain[T]) Each(action Action[T]) { c.engine.Each(c.items, action) }

// ─────────────────────────────────────────────────────────────────────────────
// Shape-preserving operations
// ─────────────────────────────────────────────────────────────────────────────

// Sort stably sorts the elements by cmp.
func (c *Chain[T]) Sort(cmp Comparator[T]) *Chain[T] {
	c.items = c.engine.Sort(c.items, cmp)
	return c
}

// Reverse reverses the order of the elements.
func (c *Chain[T]) Reverse() *Chain[T] {
	c.items = c.engine.Reverse(c.items)
	return c
}

// Concatenate appends other to the elements.
func (c *Chain[T]) Concatenate(other []T) *Chain[T] {
	c.items = c.engine.Concatenate(c.items, other)
	return c
}

// Union keeps the distinct elements of the chain followed by other.
func (c *Chain[T]) Union(other []T, cmp Comparator[T]) *Chain[T] {
	c.items = c.engine.Union(c.items, other, cmp)
	return c
}

// Intersect keeps the elements that have an equivalent in other.
func (c *Chain[T]) Intersect(other []T, cmp Comparator[T]) *Chain[T] {
	c.items = c.engine.Intersect(c.items, other, cmp)
	return c
}

// Diverge replaces the elements with their symmetric difference with other.
func (c *Chain[T]) Diverge(other []T, cmp Comparator[T]) *Chain[T] {
	c.items = c.engine.Diverge(c.items, other, cmp)
	return c
}

// Distinct drops every element equivalent to an earlier one.
func (c *Chain[T]) Distinct(cmp Comparator[T]) *Chain[T] {
	c.items = c.engine.Distinct(c.items, cmp)
	return c
}

// Where keeps the elements satisfying pred.
func (c *Chain[T]) Where(pred Predicate[T]) *Chain[T] {
	c.items = c.engine.Where(c.items, pred)
	return c
}

// Skip drops the first n elements. It fails with [ErrOutOfBounds] when n is
// negative or larger than Count(), leaving the chain unchanged.
func (c *Chain[T]) Skip(n int) (*Chain[T], error) {
	items, err := c.engine.Skip(c.items, n)
	if err != nil {
		return c, err
	}
	c.items = items
	return c, nil
}

// Take keeps the first n elements. It fails with [ErrOutOfBounds] when n is
// negative or larger than Count(), leaving the chain unchanged.
func (c *Chain[T]) Take(n int) (*Chain[T], error) {
	items, err := c.engine.Take(c.items, n)
	if err != nil {
		return c, err
	}
	c.items = items
	return c, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Queries
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether the chain holds no elements.
func (c *Chain[T]) IsEmpty() bool { return c.engine.IsNullOrEmpty(c.items) }

// Any reports whether the chain holds at least one element.
func (c *Chain[T]) Any() bool { return c.engine.Any(c.items) }

// AnyMatch reports whether some element satisfies pred.
func (c *Chain[T]) AnyMatch(pred Predicate[T]) bool { return c.engine.AnyMatch(c.items, pred) }

// None reports whether the chain holds no elements.
func (c *Chain[T]) None() bool { return c.engine.None(c.items) }

// NoneMatch reports whether no element satisfies pred.
func (c *Chain[T]) NoneMatch(pred Predicate[T]) bool { return c.engine.NoneMatch(c.items, pred) }

// Count returns the number of elements.
func (c *Chain[T]) Count() int { return c.engine.Count(c.items) }

// CountMatch returns the number of elements satisfying pred.
func (c *Chain[T]) CountMatch(pred Predicate[T]) int { return c.engine.CountMatch(c.items, pred) }

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element; see [Engine.First].
func (c *Chain[T]) First() (T, error) { return c.engine.First(c.items) }

// FirstOrNull returns the first element, or false when the chain is empty.
func (c *Chain[T]) FirstOrNull() (T, bool) { return c.engine.FirstOrNull(c.items) }

// FirstMatch returns the first element satisfying pred; see [Engine.FirstMatch].
func (c *Chain[T]) FirstMatch(pred Predicate[T]) (T, error) {
	return c.engine.FirstMatch(c.items, pred)
}

// FirstMatchOrNull returns the first element satisfying pred, or false.
func (c *Chain[T]) FirstMatchOrNull(pred Predicate[T]) (T, bool) {
	return c.engine.FirstMatchOrNull(c.items, pred)
}

// Last returns the last element; see [Engine.Last].
func (c *Chain[T]) Last() (T, error) { return c.engine.Last(c.items) }

// LastOrNull returns the last element, or false when the chain is empty.
func (c *Chain[T]) LastOrNull() (T, bool) { return c.engine.LastOrNull(c.items) }

// LastMatch returns the last element satisfying pred; see [Engine.LastMatch].
func (c *Chain[T]) LastMatch(pred Predicate[T]) (T, error) {
	return c.engine.LastMatch(c.items, pred)
}

// LastMatchOrNull returns the last element satisfying pred, or false.
func (c *Chain[T]) LastMatchOrNull(pred Predicate[T]) (T, bool) {
	return c.engine.LastMatchOrNull(c.items, pred)
}

// At returns the element at index; see [Engine.At].
func (c *Chain[T]) At(index int) (T, error) { return c.engine.At(c.items, index) }
