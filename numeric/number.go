package numeric

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/hasbyte1/go-chain/chain"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
)

// Number is satisfied by every integer and floating-point type, including
// named types derived from them.
type Number interface {
	constraints.Integer | constraints.Float
}

// toDecimal converts v without loss. Floats use their shortest
// round-tripping representation, so float64(0.1) becomes exactly 0.1.
func toDecimal[T Number](v T) (decimal.Decimal, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0), nil
	default: // reflect.Float32, reflect.Float64
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, fmt.Errorf("%w: %v has no decimal value", chain.ErrArithmetic, f)
		}
		if rv.Kind() == reflect.Float32 {
			return decimal.NewFromFloat32(float32(f)), nil
		}
		return decimal.NewFromFloat(f), nil
	}
}

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// divideExact returns d/n as a decimal with exactly as many fractional digits
// as the quotient needs. A quotient terminates in base 10 only when its
// reduced denominator is of the form 2^a·5^b; anything else is an error.
func divideExact(d decimal.Decimal, n int64) (decimal.Decimal, error) {
	if n == 0 {
		return decimal.Zero, fmt.Errorf("%w: division by zero", chain.ErrArithmetic)
	}
	q := new(big.Rat).Quo(d.Rat(), new(big.Rat).SetInt64(n))

	rest := new(big.Int).Set(q.Denom())
	twos := stripFactor(rest, bigTwo)
	fives := stripFactor(rest, bigFive)
	if rest.Cmp(bigOne) != 0 {
		return decimal.Zero, fmt.Errorf("%w: non-terminating decimal expansion of %s/%d", chain.ErrArithmetic, d, n)
	}

	digits := max(twos, fives)
	scaled := new(big.Int).Exp(bigTen, big.NewInt(int64(digits)), nil)
	scaled.Mul(scaled, q.Num())
	scaled.Quo(scaled, q.Denom())
	return decimal.NewFromBigInt(scaled, -int32(digits)), nil
}

// stripFactor divides x by f as often as it divides evenly and returns the
// count. x is modified in place.
func stripFactor(x, f *big.Int) int {
	count := 0
	quo, rem := new(big.Int), new(big.Int)
	for x.Sign() != 0 {
		quo.QuoRem(x, f, rem)
		if rem.Sign() != 0 {
			break
		}
		x.Set(quo)
		count++
	}
	return count
}
