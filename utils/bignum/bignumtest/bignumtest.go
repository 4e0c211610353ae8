// Package bignumtest provides a conformance suite for implementations of
// [bignum.Integer]. Backends call [Run] from their own tests.
package bignumtest

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/sampling"
)

// Run checks the backend I against math/big on a deterministic set of
// natural numbers.
func Run[I bignum.Integer[I]](t *testing.T) {

	var zero I

	prng, err := sampling.NewKeyedPRNG([]byte("bignumtest"))
	require.NoError(t, err)

	from := func(x *big.Int) I { return zero.FromBig(x) }

	values := make([]*big.Int, 0, 16)
	for _, bits := range []int{2, 8, 63, 64, 65, 127, 256, 521} {
		v, err := sampling.RandIntBits(prng, bits)
		require.NoError(t, err)
		values = append(values, v.SetBit(v, bits-1, 1))
	}

	t.Run("Conversions", func(t *testing.T) {
		for _, v := range values {
			x := from(v)
			require.Equal(t, 0, x.Big().Cmp(v))
			require.Equal(t, v.String(), x.String())
			require.Equal(t, v.Bytes(), x.Bytes())
			require.Equal(t, v.BitLen(), x.BitLen())

			u, err := x.Uint64()
			if v.IsUint64() {
				require.NoError(t, err)
				require.Equal(t, v.Uint64(), u)
			} else {
				require.ErrorIs(t, err, bignum.ErrNarrowing)
			}
		}
		require.True(t, zero.FromUint64(0).IsZero())
		require.Equal(t, "18446744073709551615", zero.FromUint64(^uint64(0)).String())
	})

	t.Run("Arithmetic", func(t *testing.T) {
		for i := range values {
			for j := range values {
				a, b := values[i], values[j]
				x, y := from(a), from(b)

				require.Equal(t, new(big.Int).Add(a, b).String(), x.Add(y).String())
				require.Equal(t, new(big.Int).Mul(a, b).String(), x.Mul(y).String())
				require.Equal(t, new(big.Int).Quo(a, b).String(), x.Quo(y).String())
				require.Equal(t, new(big.Int).Mod(a, b).String(), x.Mod(y).String())
				require.Equal(t, new(big.Int).GCD(nil, nil, a, b).String(), x.GCD(y).String())
				require.Equal(t, a.Cmp(b), x.Cmp(y))

				if a.Cmp(b) >= 0 {
					require.Equal(t, new(big.Int).Sub(a, b).String(), x.Sub(y).String())
				}

				require.Equal(t, new(big.Int).Mod(new(big.Int).Sub(a, b), b).String(), bignum.ModSub(x, y, y).String())
			}
		}
	})

	t.Run("ModPow", func(t *testing.T) {
		m := values[len(values)-1]
		m = new(big.Int).SetBit(m, 0, 1)
		for _, b := range values {
			for _, e := range values[:4] {
				want := new(big.Int).Exp(b, e, m)
				require.Equal(t, want.String(), from(b).ModPow(from(e), from(m)).String())
			}
		}
	})

	t.Run("ModInverse", func(t *testing.T) {
		m := bignum.NewInt("0xffffffffffffffffffffffffffffff61") // 2^128 - 159 is prime
		for _, v := range values {
			inv, ok := from(v).ModInverse(from(m))
			if new(big.Int).Mod(v, m).Sign() == 0 {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, "1", from(v).Mul(inv).Mod(from(m)).String())
		}
		_, ok := zero.FromUint64(6).ModInverse(zero.FromUint64(9))
		require.False(t, ok)
	})

	t.Run("Bits", func(t *testing.T) {
		for _, v := range values {
			x := from(v)
			for _, n := range []uint{0, 1, 13, 64, 100} {
				require.Equal(t, new(big.Int).Lsh(v, n).String(), x.Lsh(n).String())
				require.Equal(t, new(big.Int).Rsh(v, n).String(), x.Rsh(n).String())
			}
			for i := 0; i < v.BitLen()+2; i++ {
				require.Equal(t, v.Bit(i), x.Bit(i))
			}
			require.Equal(t, v.Bit(0) == 0, x.IsEven())

			set := x.SetBit(v.BitLen()+3, 1)
			require.Equal(t, v.BitLen()+4, set.BitLen())
			require.Equal(t, 0, x.Big().Cmp(v), "SetBit must not mutate its receiver")
			require.Equal(t, x.String(), set.SetBit(v.BitLen()+3, 0).String())
		}
	})

	t.Run("Predicates", func(t *testing.T) {
		require.True(t, zero.FromUint64(0).IsZero())
		require.False(t, zero.FromUint64(1).IsZero())
		require.False(t, zero.FromUint64(1).IsNegative())
		require.True(t, zero.FromUint64(0xffffffffffffffc5).ProbablyPrime(20)) // 2^64 - 59
		require.False(t, zero.FromUint64(0xffffffffffffffff).ProbablyPrime(20))
		require.True(t, from(bignum.NewInt("18446744073709551629")).ProbablyPrime(20)) // 2^64 + 13
	})

	t.Run("Immutability", func(t *testing.T) {
		a, b := from(values[5]), from(values[6])
		sa, sb := a.String(), b.String()
		_ = a.Add(b)
		_ = a.Mul(b)
		_ = b.Sub(a)
		_ = a.Mod(b)
		_ = a.ModPow(b, b.SetBit(0, 1))
		_ = a.Lsh(7)
		require.Equal(t, sa, a.String())
		require.Equal(t, sb, b.String())
	})

	t.Run("Sampling", func(t *testing.T) {
		upper := zero.FromUint64(1000)
		lower := zero.FromUint64(990)
		for i := 0; i < 128; i++ {
			x, err := zero.SampleBelow(prng, upper)
			require.NoError(t, err)
			require.True(t, x.Cmp(upper) < 0)

			x, err = zero.SampleRange(prng, lower, upper)
			require.NoError(t, err)
			require.True(t, x.Cmp(lower) >= 0 && x.Cmp(upper) < 0)

			x, err = zero.SampleBits(prng, 70)
			require.NoError(t, err)
			require.LessOrEqual(t, x.BitLen(), 70)
		}
	})

	t.Run("Helpers", func(t *testing.T) {
		require.Equal(t, "1", bignum.One[I]().String())
		require.Equal(t, "2", bignum.Two[I]().String())
		require.True(t, bignum.Zero[I]().IsZero())
		require.Equal(t, "12", bignum.LCM(zero.FromUint64(4), zero.FromUint64(6)).String())
		require.Equal(t, "6", bignum.Max(zero.FromUint64(4), zero.FromUint64(6)).String())
		require.True(t, bignum.Equal(zero.FromUint64(4), zero.FromUint64(4)))
		require.Equal(t, "5", bignum.FromInt64(-2, zero.FromUint64(7)).String())
		require.Equal(t, "2", bignum.FromInt64(2, zero.FromUint64(7)).String())
	})
}
