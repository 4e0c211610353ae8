package safenum_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/paillier/backend/bigint"
	"github.com/tuneinsight/paillier/backend/safenum"
	"github.com/tuneinsight/paillier/utils/bignum/bignumtest"
	"github.com/tuneinsight/paillier/utils/sampling"
)

func TestNat(t *testing.T) {

	bignumtest.Run[safenum.Nat](t)

	t.Run("SubUnderflow", func(t *testing.T) {
		require.Panics(t, func() {
			safenum.NewNat(3).Sub(safenum.NewNat(5))
		})
	})

	t.Run("FromBigNegative", func(t *testing.T) {
		require.Panics(t, func() {
			safenum.Nat{}.FromBig(big.NewInt(-1))
		})
	})

	t.Run("NeverNegative", func(t *testing.T) {
		require.False(t, safenum.NewNat(0).IsNegative())
		require.False(t, safenum.NewNat(42).IsNegative())
	})

	t.Run("AgreesWithBigInt", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG([]byte("safenum"))
		require.NoError(t, err)

		m, ok := new(big.Int).SetString("0xd5c1b8f1e0c9a3b7e9d1f2a4c6b8e0f3a5c7e9b1d3f5a7c9e1b3d5f7a9c1e3b5", 0)
		require.True(t, ok)

		for i := 0; i < 16; i++ {
			x, err := sampling.RandIntBelow(prng, m)
			require.NoError(t, err)
			e, err := sampling.RandIntBits(prng, 128)
			require.NoError(t, err)

			want := bigint.NewInt(x).ModPow(bigint.NewInt(e), bigint.NewInt(m))
			have := safenum.NewNat(x).ModPow(safenum.NewNat(e), safenum.NewNat(m))
			require.Equal(t, want.String(), have.String())

			want = bigint.NewInt(x).Mul(bigint.NewInt(e)).Mod(bigint.NewInt(m))
			have = safenum.NewNat(x).Mul(safenum.NewNat(e)).Mod(safenum.NewNat(m))
			require.Equal(t, want.String(), have.String())
		}
	})
}
