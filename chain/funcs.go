package chain

// Action is invoked once per element for its side effect.
type Action[T any] func(T)

// Predicate tests a single element.
type Predicate[T any] func(T) bool

// Not returns the negation of p.
func (p Predicate[T]) Not() Predicate[T] {
	return func(item T) bool { return !p(item) }
}

// Comparator orders two elements, returning a negative number when a sorts
// before b, zero when they are equivalent and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Reverse returns a comparator with the opposite order.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int { return c(b, a) }
}

// Selector maps an element to a value of another type.
type Selector[T, TD any] = func(T) TD

// ManySelector maps an element to a slice; results are flattened in order.
type ManySelector[T, TD any] = func(T) []TD

// equalTo reports elements equivalent to a, calling cmp(a, item).
func equalTo[T any](a T, cmp Comparator[T]) Predicate[T] {
	return func(item T) bool { return cmp(a, item) == 0 }
}
