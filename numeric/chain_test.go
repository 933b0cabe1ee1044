package numeric_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-chain/chain"
	"github.com/hasbyte1/go-chain/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ chain.Builder[int] = (*numeric.Chain[int])(nil)

func countEven(b chain.Builder[int]) int {
	return b.CountMatch(func(n int) bool { return n%2 == 0 })
}

func TestChainIsBuilder(t *testing.T) {
	c := numeric.Of(1, 2, 3, 4)
	assert.Equal(t, 2, countEven(c))
	assert.Equal(t, 2, countEven(c.Unwrap()))
}

func TestChainAggregations(t *testing.T) {
	c := numeric.Of(2, 3, 4)

	sum, err := c.Sum()
	require.NoError(t, err)
	assert.Equal(t, "9", sum.String())

	avg, err := c.Average()
	require.NoError(t, err)
	assert.Equal(t, "3", avg.String())

	lo, err := c.Min()
	require.NoError(t, err)
	assert.Equal(t, 2, lo)

	hi, err := c.Max()
	require.NoError(t, err)
	assert.Equal(t, 4, hi)
}

func TestChainStaysNumericThroughChaining(t *testing.T) {
	c := numeric.Of(4, 8, 15, 16, 23, 42)
	got := c.Where(func(n int) bool { return n%2 == 0 }).
		Sort(chain.Descending[int]()).
		Reverse().
		Concatenate([]int{8}).
		Distinct(chain.Ascending[int]())
	assert.Same(t, c, got)
	assert.Equal(t, []int{4, 8, 16, 42}, c.ToList())

	avg, err := got.Average()
	require.NoError(t, err)
	assert.Equal(t, "17.5", avg.String())
}

func TestChainSetOperations(t *testing.T) {
	cmp := chain.Ascending[int]()
	assert.Equal(t, []int{1, 2, 3, 4}, numeric.Of(1, 2, 3).Union([]int{2, 3, 4}, cmp).ToList())
	assert.Equal(t, []int{2, 3}, numeric.Of(1, 2, 3).Intersect([]int{2, 3, 4}, cmp).ToList())
	assert.Equal(t, []int{1, 4}, numeric.Of(1, 2, 3).Diverge([]int{2, 3, 4}, cmp).ToList())
}

func TestChainSkipTake(t *testing.T) {
	c := numeric.Of(1, 2, 3, 4, 5)

	c, err := c.Skip(1)
	require.NoError(t, err)
	c, err = c.Take(3)
	require.NoError(t, err)

	sum, err := c.Sum()
	require.NoError(t, err)
	assert.Equal(t, "9", sum.String())

	_, err = c.Take(4)
	require.ErrorIs(t, err, chain.ErrOutOfBounds)
	assert.Equal(t, []int{2, 3, 4}, c.ToList())
}

func TestChainEmptyAggregations(t *testing.T) {
	c := numeric.From([]float64{})

	_, err := c.Min()
	require.ErrorIs(t, err, chain.ErrOutOfBounds)
	_, err = c.Max()
	require.ErrorIs(t, err, chain.ErrOutOfBounds)
	_, err = c.Average()
	require.ErrorIs(t, err, chain.ErrArithmetic)

	sum, err := c.Sum()
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestWrapSharesState(t *testing.T) {
	base := chain.Of(3, 1, 2)
	n := numeric.Wrap(base)
	n.Sort(chain.Ascending[int]())

	assert.Equal(t, []int{1, 2, 3}, base.ToList())
	assert.Same(t, base, n.Unwrap())
}

func TestSelectFromNumericChain(t *testing.T) {
	c := numeric.Of(1, 2, 3)
	halves := numeric.Wrap(chain.Select(c.Unwrap(), func(n int) float64 { return float64(n) / 2 }))

	avg, err := halves.Average()
	require.NoError(t, err)
	assert.Equal(t, "1", avg.String())
	assert.Equal(t, []int{1, 2, 3}, c.ToList())
}

func TestChainTapDump(t *testing.T) {
	var buf bytes.Buffer
	var seen int
	numeric.Of(1, 2).
		Tap(func(c *numeric.Chain[int]) { seen = c.Count() }).
		Dump(&buf)
	assert.Equal(t, 2, seen)
	assert.Equal(t, "[1,2]\n", buf.String())
}
