package chain

import "golang.org/x/exp/slices"

// Engine implements every chain operation over plain slices.
//
// Engine holds no state. Operations never modify their input slices: each
// one returns a newly allocated result, even when nothing was removed. Only
// the [Action] passed to [Engine.Each] may change elements, and only through
// whatever the element type exposes (pointers, maps, …).
type Engine[T any] struct{}

// NewEngine returns an Engine for T.
func NewEngine[T any]() Engine[T] { return Engine[T]{} }

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & ordering
// ─────────────────────────────────────────────────────────────────────────────

// Each calls action on every element, in order.
func (Engine[T]) Each(items []T, action Action[T]) {
	for _, item := range items {
		action(item)
	}
}

// Sort returns items sorted by cmp. The sort is stable: equivalent elements
// keep their relative input order.
//
//	[3 1 4 2] → [1 2 3 4]
func (Engine[T]) Sort(items []T, cmp Comparator[T]) []T {
	out := clone(items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp(a, b) })
	return out
}

// Reverse returns items in reverse order.
func (Engine[T]) Reverse(items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Concatenate returns all of a followed by all of b.
func (Engine[T]) Concatenate(a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Union returns the distinct elements of a and b, in first-seen order.
//
//	[1 2 3] ∪ [2 3 4] → [1 2 3 4]
func (e Engine[T]) Union(a, b []T, cmp Comparator[T]) []T {
	return e.Distinct(e.Concatenate(a, b), cmp)
}

// Intersect returns the elements of a that have an equivalent in b, in a's
// order. Duplicates in a are kept when each one matches.
//
//	[1 2 3] ∩ [2 3 4] → [2 3]
func (e Engine[T]) Intersect(a, b []T, cmp Comparator[T]) []T {
	out := make([]T, 0)
	for _, item := range a {
		if e.AnyMatch(b, equalTo(item, cmp)) {
			out = append(out, item)
		}
	}
	return out
}

// Diverge returns the symmetric difference of a and b: the elements of a with
// no equivalent in b, followed by the elements of b with no equivalent in a.
//
//	[1 2 3] diverge [2 3 4] → [1 4]
func (e Engine[T]) Diverge(a, b []T, cmp Comparator[T]) []T {
	out := make([]T, 0)
	for _, item := range a {
		if e.NoneMatch(b, equalTo(item, cmp)) {
			out = append(out, item)
		}
	}
	for _, item := range b {
		// Elements of a stay on the left of cmp.
		if e.NoneMatch(a, func(other T) bool { return cmp(other, item) == 0 }) {
			out = append(out, item)
		}
	}
	return out
}

// Distinct keeps the first element of each equivalence class, in input order.
//
//	[1 1 2 2 3] → [1 2 3]
func (e Engine[T]) Distinct(items []T, cmp Comparator[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if e.NoneMatch(out, equalTo(item, cmp)) {
			out = append(out, item)
		}
	}
	return out
}

// Where returns the elements satisfying pred, in input order.
func (Engine[T]) Where(items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & counting
// ─────────────────────────────────────────────────────────────────────────────

// IsNullOrEmpty reports whether items is nil or has no elements.
func (Engine[T]) IsNullOrEmpty(items []T) bool { return len(items) == 0 }

// Any reports whether items has at least one element.
func (Engine[T]) Any(items []T) bool { return len(items) > 0 }

// AnyMatch reports whether some element satisfies pred. It stops at the
// first match.
func (Engine[T]) AnyMatch(items []T, pred Predicate[T]) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}
	return false
}

// None reports whether items is empty.
func (e Engine[T]) None(items []T) bool { return !e.Any(items) }

// NoneMatch reports whether no element satisfies pred.
func (e Engine[T]) NoneMatch(items []T, pred Predicate[T]) bool { return !e.AnyMatch(items, pred) }

// Count returns the number of elements.
func (Engine[T]) Count(items []T) int { return len(items) }

// CountMatch returns the number of elements satisfying pred.
func (Engine[T]) CountMatch(items []T, pred Predicate[T]) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Element access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, or an [ErrOutOfBounds] error when items
// is empty.
func (Engine[T]) First(items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, outOfBounds("first", 0, 0)
	}
	return items[0], nil
}

// FirstOrNull returns the first element and true, or the zero value and
// false when items is empty.
func (e Engine[T]) FirstOrNull(items []T) (T, bool) {
	item, err := e.First(items)
	return item, err == nil
}

// FirstMatch returns the first element satisfying pred, or [ErrNotFound].
func (Engine[T]) FirstMatch(items []T, pred Predicate[T]) (T, error) {
	for _, item := range items {
		if pred(item) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// FirstMatchOrNull is [Engine.FirstMatch] reporting absence as false.
func (e Engine[T]) FirstMatchOrNull(items []T, pred Predicate[T]) (T, bool) {
	item, err := e.FirstMatch(items, pred)
	return item, err == nil
}

// Last returns the last element, or an [ErrOutOfBounds] error when items is
// empty.
func (Engine[T]) Last(items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, outOfBounds("last", -1, 0)
	}
	return items[len(items)-1], nil
}

// LastOrNull returns the last element and true, or the zero value and false
// when items is empty.
func (e Engine[T]) LastOrNull(items []T) (T, bool) {
	item, err := e.Last(items)
	return item, err == nil
}

// LastMatch returns the last element satisfying pred, or [ErrNotFound].
// The whole slice is scanned front to back, keeping the most recent match.
func (Engine[T]) LastMatch(items []T, pred Predicate[T]) (T, error) {
	var found T
	matched := false
	for _, item := range items {
		if pred(item) {
			found = item
			matched = true
		}
	}
	if !matched {
		return found, ErrNotFound
	}
	return found, nil
}

// LastMatchOrNull is [Engine.LastMatch] reporting absence as false.
func (e Engine[T]) LastMatchOrNull(items []T, pred Predicate[T]) (T, bool) {
	item, err := e.LastMatch(items, pred)
	return item, err == nil
}

// At returns the element at the zero-based index, or an [ErrOutOfBounds]
// error when index is outside [0, len(items)).
func (Engine[T]) At(items []T, index int) (T, error) {
	if index < 0 || index >= len(items) {
		var zero T
		return zero, outOfBounds("at", index, len(items))
	}
	return items[index], nil
}

// Skip returns the elements after the first n. n may equal len(items), which
// yields an empty slice; anything outside [0, len(items)] is out of bounds.
func (Engine[T]) Skip(items []T, n int) ([]T, error) {
	if n < 0 || n > len(items) {
		return nil, outOfBounds("skip", n, len(items))
	}
	return clone(items[n:]), nil
}

// Take returns the first n elements. n must lie in [0, len(items)].
func (Engine[T]) Take(items []T, n int) ([]T, error) {
	if n < 0 || n > len(items) {
		return nil, outOfBounds("take", n, len(items))
	}
	return clone(items[:n]), nil
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
