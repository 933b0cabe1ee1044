package numeric

import (
	"fmt"

	"github.com/hasbyte1/go-chain/chain"
	"github.com/shopspring/decimal"
)

// Engine is a [chain.Engine] with numeric aggregations.
type Engine[T Number] struct {
	chain.Engine[T]
}

// NewEngine returns an Engine for T.
func NewEngine[T Number]() Engine[T] { return Engine[T]{Engine: chain.NewEngine[T]()} }

// Min returns the smallest element. NaN orders above every other value, so
// it is the result only when every element is NaN. An empty slice yields an
// error wrapping [chain.ErrOutOfBounds].
func (e Engine[T]) Min(items []T) (T, error) {
	v, err := e.First(e.Sort(items, chain.Ascending[T]()))
	if err != nil {
		return v, fmt.Errorf("min: %w", err)
	}
	return v, nil
}

// Max returns the largest element, which is NaN whenever a NaN is present.
// An empty slice yields an error wrapping [chain.ErrOutOfBounds].
func (e Engine[T]) Max(items []T) (T, error) {
	v, err := e.First(e.Sort(items, chain.Descending[T]()))
	if err != nil {
		return v, fmt.Errorf("max: %w", err)
	}
	return v, nil
}

// Sum adds every element left to right, starting from zero. The sum of an
// empty slice is zero. NaN and infinite values fail with
// [chain.ErrArithmetic].
func (Engine[T]) Sum(items []T) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		d, err := toDecimal(item)
		if err != nil {
			return decimal.Zero, fmt.Errorf("sum: %w", err)
		}
		sum = sum.Add(d)
	}
	return sum, nil
}

// Average returns Sum / Count exactly. It fails with [chain.ErrArithmetic]
// on an empty slice and when the quotient does not terminate.
func (e Engine[T]) Average(items []T) (decimal.Decimal, error) {
	sum, err := e.Sum(items)
	if err != nil {
		return decimal.Zero, err
	}
	avg, err := divideExact(sum, int64(e.Count(items)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("average: %w", err)
	}
	return avg, nil
}
