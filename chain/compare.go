package chain

import "golang.org/x/exp/constraints"

// Ascending orders values by their natural order. It is a total order for
// floats too: NaN sorts after every other value, +Inf included, and NaNs
// compare equal to each other.
func Ascending[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		aNaN, bNaN := isNaN(a), isNaN(b)
		switch {
		case aNaN && bNaN:
			return 0
		case aNaN:
			return 1
		case bNaN:
			return -1
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Descending orders values by the reverse of their natural order, so NaN
// sorts first.
func Descending[T constraints.Ordered]() Comparator[T] {
	return Ascending[T]().Reverse()
}

// isNaN is only ever true for a floating-point NaN.
func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}

// EqualBy builds an equivalence-only comparator: it returns 0 when both
// elements have the same key and 1 otherwise. It is meant for the set
// operations and must not be used to sort.
//
//	byID := chain.EqualBy(func(u User) int { return u.ID })
//	chain.From(a).Union(b, byID)
func EqualBy[T any, K comparable](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		if key(a) == key(b) {
			return 0
		}
		return 1
	}
}
