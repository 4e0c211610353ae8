package sampling_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/paillier/utils/sampling"
)

func TestSampling(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG([]byte("sampling"))
	require.NoError(t, err)

	t.Run("RandIntBelow", func(t *testing.T) {
		max := big.NewInt(1000)
		for i := 0; i < 256; i++ {
			n, err := sampling.RandIntBelow(prng, max)
			require.NoError(t, err)
			require.True(t, n.Sign() >= 0 && n.Cmp(max) < 0)
		}
		_, err := sampling.RandIntBelow(prng, big.NewInt(0))
		require.Error(t, err)
	})

	t.Run("RandIntRange", func(t *testing.T) {
		lower, upper := big.NewInt(1), big.NewInt(3)
		seen := map[int64]bool{}
		for i := 0; i < 256; i++ {
			n, err := sampling.RandIntRange(prng, lower, upper)
			require.NoError(t, err)
			require.True(t, n.Cmp(lower) >= 0 && n.Cmp(upper) < 0)
			seen[n.Int64()] = true
		}
		require.Len(t, seen, 2)
		_, err := sampling.RandIntRange(prng, upper, lower)
		require.Error(t, err)
	})

	t.Run("RandIntBits", func(t *testing.T) {
		for _, bits := range []int{0, 1, 7, 8, 9, 255} {
			for i := 0; i < 64; i++ {
				n, err := sampling.RandIntBits(prng, bits)
				require.NoError(t, err)
				require.LessOrEqual(t, n.BitLen(), bits)
			}
		}
	})

	t.Run("ExhaustedSource", func(t *testing.T) {
		_, err := sampling.RandIntBits(bytes.NewReader([]byte{0x01}), 64)
		require.Error(t, err)
		_, err = sampling.RandIntBelow(bytes.NewReader(nil), big.NewInt(1<<40))
		require.Error(t, err)
	})
}
