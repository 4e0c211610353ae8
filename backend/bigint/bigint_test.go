package bigint_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/paillier/backend/bigint"
	"github.com/tuneinsight/paillier/utils/bignum/bignumtest"
)

func TestInt(t *testing.T) {

	bignumtest.Run[bigint.Int](t)

	t.Run("Signed", func(t *testing.T) {
		a := bigint.NewInt(3)
		b := bigint.NewInt(5)
		d := a.Sub(b)
		require.True(t, d.IsNegative())
		require.Equal(t, "-2", d.String())
		require.Equal(t, "3", d.Mod(b).String())

		_, err := d.Uint64()
		require.Error(t, err)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		var z bigint.Int
		require.True(t, z.IsZero())
		require.True(t, z.IsEven())
		require.Equal(t, "7", z.Add(bigint.NewInt(7)).String())
	})
}
