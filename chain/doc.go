// Package chain provides a generic, fluent Chain type for querying and
// transforming an in-memory, ordered slice of elements without writing
// imperative loops.
//
// # Overview
//
// The package has two layers:
//
//   - [Engine][T] is a stateless set of operations. Each one reads one or two
//     input slices and returns a newly allocated slice or a scalar.
//   - [Chain][T] holds the current slice and threads it through successive
//     calls to the engine.
//
// Example:
//
//	top, _ := chain.Of(5, 3, 8, 1, 9, 2).
//	    Where(func(n int) bool { return n > 2 }).
//	    Sort(chain.Descending[int]()).
//	    Take(3)
//	top.ToList() // → [9 8 5]
//
// # Shape-preserving operations
//
// Sort, Reverse, Concatenate, Union, Intersect, Diverge, Distinct, Where,
// Skip and Take replace the slice held by the chain and return the same
// *Chain so calls can be strung together. The input slices themselves are
// never modified; every operation allocates its result.
//
// # Type-changing operations
//
// Go methods cannot introduce new type parameters, so [Select] and
// [SelectMany] are package-level functions returning a new *Chain of the
// target type. The source chain keeps its slice.
//
//	names := chain.Select(users, func(u User) string { return u.Name })
//
// # Equivalence
//
// Set operations (Union, Intersect, Diverge, Distinct) compare elements with a
// [Comparator]: two elements are equivalent when it returns zero. These run in
// O(n·m). When equivalence is equality of a comparable key, the keyed forms
// [DistinctBy], [UnionBy], [IntersectBy] and [DivergeBy] give the same
// results using a map.
//
// # Errors
//
// Positional access outside the valid range returns an error wrapping
// [ErrOutOfBounds]; a predicate search with no match returns [ErrNotFound].
// The OrNull variants report absence through a boolean instead.
//
// A Chain is not safe for concurrent use.
package chain
