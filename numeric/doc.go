// Package numeric extends package chain with aggregations over numeric
// elements: Min, Max, Sum and Average.
//
// [Engine] embeds [chain.Engine] and [Chain] embeds *[chain.Chain], so every
// generic operation stays available. The shape-preserving ones are redeclared
// to return *numeric.Chain so the aggregations remain reachable mid-chain:
//
//	avg, err := numeric.Of(4, 8, 15, 16, 23, 42).
//	    Where(func(n int) bool { return n%2 == 0 }).
//	    Average() // → 17.5
//
// Sum and Average are exact. They return a [decimal.Decimal] accumulated
// left to right from zero. Average fails with an error wrapping
// [chain.ErrArithmetic] when the collection is empty or the quotient has no
// finite decimal expansion (for example 10/3). No rounding is ever applied.
package numeric
