package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// PowUint returns base^exp.
func PowUint(base uint64, exp int) *big.Int {
	if exp < 0 {
		panic(fmt.Errorf("cannot PowUint: negative exponent %d", exp))
	}
	return new(big.Int).Exp(new(big.Int).SetUint64(base), big.NewInt(int64(exp)), nil)
}

// FromInt64 maps a signed value into [0, m) using the wrap-around
// convention: nonnegative values are kept, negative values become m - |x|.
// The caller guarantees |x| < m.
func FromInt64[I Integer[I]](x int64, m I) I {
	var zero I
	if x >= 0 {
		return zero.FromUint64(uint64(x))
	}
	// -x overflows for MinInt64 but uint64 conversion recovers the magnitude
	return m.Sub(zero.FromUint64(uint64(-x)))
}
