package chain

// The functions in this file are map-based forms of the set operations for
// the common case where equivalence is equality of a comparable key. For any
// key function k, DistinctBy(items, k) returns the same elements as
// Engine.Distinct(items, EqualBy(k)); likewise for the other three.

// DistinctBy keeps the first element for each key, in input order.
func DistinctBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// UnionBy returns the distinct elements of a followed by b, by key.
func UnionBy[T any, K comparable](a, b []T, key func(T) K) []T {
	return DistinctBy(NewEngine[T]().Concatenate(a, b), key)
}

// IntersectBy returns the elements of a whose key occurs in b.
func IntersectBy[T any, K comparable](a, b []T, key func(T) K) []T {
	set := keySet(b, key)
	out := make([]T, 0)
	for _, item := range a {
		if _, ok := set[key(item)]; ok {
			out = append(out, item)
		}
	}
	return out
}

// DivergeBy returns the elements of a whose key is absent from b, followed
// by the elements of b whose key is absent from a.
func DivergeBy[T any, K comparable](a, b []T, key func(T) K) []T {
	inA, inB := keySet(a, key), keySet(b, key)
	out := make([]T, 0)
	for _, item := range a {
		if _, ok := inB[key(item)]; !ok {
			out = append(out, item)
		}
	}
	for _, item := range b {
		if _, ok := inA[key(item)]; !ok {
			out = append(out, item)
		}
	}
	return out
}

func keySet[T any, K comparable](items []T, key func(T) K) map[K]struct{} {
	set := make(map[K]struct{}, len(items))
	for _, item := range items {
		set[key(item)] = struct{}{}
	}
	return set
}
