package chain

// Builder is the read side of a chain: its queries, element access and
// terminal operations. [Chain] and types embedding it, such as numeric.Chain,
// satisfy it.
//
// Shape-preserving operations are not part of Builder because each
// implementation returns its own concrete type from them. Accept Builder in
// functions that only inspect a chain.
type Builder[T any] interface {
	// ToList returns a copy of the current elements.
	ToList() []T

	// Each calls action for every element, in order.
	Each(action Action[T])

	IsEmpty() bool
	Any() bool
	AnyMatch(pred Predicate[T]) bool
	None() bool
	NoneMatch(pred Predicate[T]) bool
	Count() int
	CountMatch(pred Predicate[T]) int

	First() (T, error)
	FirstOrNull() (T, bool)
	FirstMatch(pred Predicate[T]) (T, error)
	FirstMatchOrNull(pred Predicate[T]) (T, bool)
	Last() (T, error)
	LastOrNull() (T, bool)
	LastMatch(pred Predicate[T]) (T, error)
	LastMatchOrNull(pred Predicate[T]) (T, bool)
	At(index int) (T, error)
}

var _ Builder[int] = (*Chain[int])(nil)
