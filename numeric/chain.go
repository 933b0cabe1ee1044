package numeric

import (
	"io"

	"github.com/hasbyte1/go-chain/chain"
	"github.com/shopspring/decimal"
)

// Chain is a [chain.Chain] over numbers. Queries and element access are
// promoted from the embedded chain; shape-preserving operations are
// redeclared so they keep returning *numeric.Chain.
type Chain[T Number] struct {
	*chain.Chain[T]
	engine Engine[T]
}

// From creates a Chain over a copy of items.
func From[T Number](items []T) *Chain[T] { return Wrap(chain.From(items)) }

// Of creates a Chain from a variadic list of items (copied).
func Of[T Number](items ...T) *Chain[T] { return From(items) }

// Wrap adds the numeric operations to an existing chain. Both values share
// state: operations on either are visible through the other.
func Wrap[T Number](c *chain.Chain[T]) *Chain[T] {
	return &Chain[T]{Chain: c, engine: NewEngine[T]()}
}

// Unwrap returns the underlying generic chain, e.g. for [chain.Select].
func (c *Chain[T]) Unwrap() *chain.Chain[T] { return c.Chain }

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Min returns the smallest element; see [Engine.Min].
func (c *Chain[T]) Min() (T, error) { return c.engine.Min(c.ToList()) }

// Max returns the largest element; see [Engine.Max].
func (c *Chain[T]) Max() (T, error) { return c.engine.Max(c.ToList()) }

// Sum returns the exact sum of the elements; see [Engine.Sum].
func (c *Chain[T]) Sum() (decimal.Decimal, error) { return c.engine.Sum(c.ToList()) }

// Average returns the exact mean of the elements; see [Engine.Average].
func (c *Chain[T]) Average() (decimal.Decimal, error) { return c.engine.Average(c.ToList()) }

// ─────────────────────────────────────────────────────────────────────────────
// Shape-preserving operations
// ─────────────────────────────────────────────────────────────────────────────

// Sort stably sorts the elements by cmp; see [chain.Chain.Sort].
func (c *Chain[T]) Sort(cmp chain.Comparator[T]) *Chain[T] {
	c.Chain.Sort(cmp)
	return c
}

// Reverse reverses the order of the elements.
func (c *Chain[T]) Reverse() *Chain[T] {
	c.Chain.Reverse()
	return c
}

// Concatenate appends other to the elements.
func (c *Chain[T]) Concatenate(other []T) *Chain[T] {
	c.Chain.Concatenate(other)
	return c
}

// Union keeps the distinct elements of the chain followed by other.
func (c *Chain[T]) Union(other []T, cmp chain.Comparator[T]) *Chain[T] {
	c.Chain.Union(other, cmp)
	return c
}

// Intersect keeps the elements that have an equivalent in other.
func (c *Chain[T]) Intersect(other []T, cmp chain.Comparator[T]) *Chain[T] {
	c.Chain.Intersect(other, cmp)
	return c
}

// Diverge replaces the elements with their symmetric difference with other.
func (c *Chain[T]) Diverge(other []T, cmp chain.Comparator[T]) *Chain[T] {
	c.Chain.Diverge(other, cmp)
	return c
}

// Distinct drops every element equivalent to an earlier one.
func (c *Chain[T]) Distinct(cmp chain.Comparator[T]) *Chain[T] {
	c.Chain.Distinct(cmp)
	return c
}

// Where keeps the elements satisfying pred.
func (c *Chain[T]) Where(pred chain.Predicate[T]) *Chain[T] {
	c.Chain.Where(pred)
	return c
}

// Skip drops the first n elements; see [chain.Chain.Skip].
func (c *Chain[T]) Skip(n int) (*Chain[T], error) {
	_, err := c.Chain.Skip(n)
	return c, err
}

// Take keeps the first n elements; see [chain.Chain.Take].
func (c *Chain[T]) Take(n int) (*Chain[T], error) {
	_, err := c.Chain.Take(n)
	return c, err
}

// Tap calls fn(c) for side effects and returns c.
func (c *Chain[T]) Tap(fn func(*Chain[T])) *Chain[T] {
	fn(c)
	return c
}

// Dump writes the chain's String form to w and returns c.
func (c *Chain[T]) Dump(w io.Writer) *Chain[T] {
	c.Chain.Dump(w)
	return c
}
