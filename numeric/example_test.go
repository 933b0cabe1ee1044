package numeric_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-chain/chain"
	"github.com/hasbyte1/go-chain/numeric"
)

func ExampleChain_Average() {
	c := numeric.Of(2, 3, 4)
	sum, _ := c.Sum()
	avg, _ := c.Average()
	fmt.Println(sum, avg)
	// Output: 9 3
}

func ExampleChain_Average_nonTerminating() {
	_, err := numeric.Of(1, 0, 0).Average()
	fmt.Println(errors.Is(err, chain.ErrArithmetic))
	// Output: true
}

func ExampleChain_Min() {
	c := numeric.Of(2.5, -1.0, 7.0)
	lo, _ := c.Min()
	hi, _ := c.Max()
	fmt.Println(lo, hi)
	// Output: -1 7
}
