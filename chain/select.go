package chain

// This file holds the operations that change the element type. Go methods
// cannot declare their own type parameters, so they are package-level
// functions:
//
//	lengths := chain.Select(chain.Of("a", "bb", "ccc"),
//	    func(s string) int { return len(s) })

// SelectSlice applies fn to every element and returns the results in order,
// one output per input.
func SelectSlice[T, TD any](items []T, fn Selector[T, TD]) []TD {
	out := make([]TD, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// SelectManySlice applies fn to every element and flattens the returned
// slices: outer order first, then each inner slice's order.
//
//	[[1 2] [3 4]] → [1 2 3 4]
func SelectManySlice[T, TD any](items []T, fn ManySelector[T, TD]) []TD {
	out := make([]TD, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item)...)
	}
	return out
}

// Select maps every element of c with fn and wraps the result in a new
// Chain. c keeps its current slice.
func Select[T, TD any](c *Chain[T], fn Selector[T, TD]) *Chain[TD] {
	return &Chain[TD]{engine: NewEngine[TD](), items: SelectSlice(c.items, fn)}
}

// SelectMany flat-maps every element of c with fn and wraps the result in a
// new Chain. c keeps its current slice.
//
//	words := chain.SelectMany(chain.Of("hello world", "foo bar"), strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func SelectMany[T, TD any](c *Chain[T], fn ManySelector[T, TD]) *Chain[TD] {
	return &Chain[TD]{engine: NewEngine[TD](), items: SelectManySlice(c.items, fn)}
}
