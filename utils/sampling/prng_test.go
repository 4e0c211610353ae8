package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/paillier/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("KeyedPRNG/Reset", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			_, err = Hb.Read(sum1)
			require.NoError(t, err)
		}

		Hb.Reset()

		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)

		require.Equal(t, sum0, sum1)
	})

	t.Run("KeyedPRNG/Key", func(t *testing.T) {
		prng, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		k := prng.Key()
		require.Equal(t, key, k)
		k[0] ^= 0xff
		require.Equal(t, key, prng.Key())
	})

	t.Run("KeyedPRNG/KeyTooLong", func(t *testing.T) {
		_, err := sampling.NewKeyedPRNG(make([]byte, 65))
		require.Error(t, err)
	})

	t.Run("ThreadSafePRNG", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		_, err = prng.Read(sum0)
		require.NoError(t, err)
		_, err = prng.Read(sum1)
		require.NoError(t, err)
		require.NotEqual(t, sum0, sum1)
	})
}
