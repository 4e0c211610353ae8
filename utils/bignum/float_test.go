package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Log2Of", 1.4142135623730951, math.Log2, Log2Of, 1e-15, t)
	testFunc2("Pow", 2, 1.4142135623730951, math.Pow, Pow, 1e-15, t)

	t.Run("RoundToInt", func(t *testing.T) {
		for _, tc := range []struct {
			x    float64
			want int64
		}{
			{0, 0}, {0.4, 0}, {0.5, 1}, {2.5, 3}, {-0.5, -1}, {-2.4, -2}, {-2.6, -3}, {1e15 + 0.5, 1e15 + 1},
		} {
			require.Equal(t, tc.want, RoundToInt(NewFloat(tc.x, 128)).Int64(), tc.x)
		}
	})

	t.Run("NewFloat", func(t *testing.T) {
		for _, x := range []interface{}{int(3), int64(3), uint(3), uint64(3), 3.0, big.NewInt(3), big.NewFloat(3)} {
			f, _ := NewFloat(x, 64).Float64()
			require.Equal(t, 3.0, f)
		}
		require.Panics(t, func() { NewFloat("3", 64) })
	})
}

func TestInt(t *testing.T) {

	t.Run("NewInt", func(t *testing.T) {
		for _, x := range []interface{}{"0x2a", uint(42), uint64(42), int64(42), 42, big.NewFloat(42.7), big.NewInt(42)} {
			require.Equal(t, int64(42), NewInt(x).Int64())
		}
		require.Equal(t, int64(0), NewInt(nil).Int64())
		require.Panics(t, func() { NewInt(4.2) })
	})

	t.Run("PowUint", func(t *testing.T) {
		require.Equal(t, "1", PowUint(10, 0).String())
		require.Equal(t, "1000000", PowUint(10, 6).String())
		require.Equal(t, new(big.Int).Lsh(big.NewInt(1), 100).String(), PowUint(2, 100).String())
		require.Panics(t, func() { PowUint(2, -1) })
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

func testFunc2(name string, x, e float64, f func(x, e float64) (y float64), g func(x, e *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53), NewFloat(e, 53)).Float64()
		require.InDelta(t, f(x, e), y, delta)
	})
}
