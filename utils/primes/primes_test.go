package primes

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/paillier/backend/bigint"
	"github.com/tuneinsight/paillier/backend/safenum"
	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/sampling"
)

func TestPrimes(t *testing.T) {
	t.Run("bigint", testPrimes[bigint.Int])
	t.Run("safenum", testPrimes[safenum.Nat])
}

func testPrimes[I bignum.Integer[I]](t *testing.T) {

	var zero I

	t.Run("Generate", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte("primes"))
		require.NoError(t, err)

		for _, bits := range []int{16, 64, 127, 256} {
			p, err := Generate[I](prng, bits, 20, 0)
			require.NoError(t, err)
			require.Equal(t, bits, p.BitLen())
			require.Equal(t, uint(1), p.Bit(bits-2))
			require.True(t, p.Big().ProbablyPrime(20))
		}
	})

	t.Run("Generate/Deterministic", func(t *testing.T) {
		prng0, err := sampling.NewKeyedPRNG([]byte("primes"))
		require.NoError(t, err)
		prng1, err := sampling.NewKeyedPRNG([]byte("primes"))
		require.NoError(t, err)

		p0, err := Generate[I](prng0, 128, 20, 0)
		require.NoError(t, err)
		p1, err := Generate[I](prng1, 128, 20, 0)
		require.NoError(t, err)
		require.True(t, bignum.Equal(p0, p1))
	})

	t.Run("Generate/TooSmall", func(t *testing.T) {
		_, err := Generate[I](&sampling.ThreadSafePRNG{}, MinBits-1, 20, 0)
		require.Error(t, err)
	})

	t.Run("Generate/Exhausted", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte("primes"))
		require.NoError(t, err)
		// a single candidate of 512 bits is composite with overwhelming probability
		_, err = Generate[I](prng, 512, 20, 1)
		if err != nil {
			require.True(t, errors.Is(err, ErrExhausted))
		}
	})

	t.Run("Generate/Randomness", func(t *testing.T) {
		_, err := Generate[I](failingReader{}, 64, 20, 0)
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrExhausted))
	})

	t.Run("IsPrime", func(t *testing.T) {
		for _, tc := range []struct {
			x     uint64
			prime bool
		}{
			{0, false},
			{1, false},
			{2, true},
			{3, true},
			{4, false},
			{53, true},
			{59, true},
			{3 * 53, false},
			{61 * 67, false},
			{65537, true},
			{18446744073709551557, true},
			{18446744073709551615, false},
		} {
			require.Equal(t, tc.prime, IsPrime(zero.FromUint64(tc.x), 20), tc.x)
		}

		mersenne := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
		require.True(t, IsPrime(zero.FromBig(mersenne), 20))
		require.False(t, IsPrime(zero.FromBig(new(big.Int).Mul(mersenne, mersenne)), 20))
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("failing reader")
}
