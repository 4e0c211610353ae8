package codec

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/paillier/schemes/paillier"
	"github.com/tuneinsight/paillier/utils/bignum"
)

// encodeSigned maps x into [0, n) with negative values wrapping to n - |x|.
// It returns an error wrapping [ErrEncodingOverflow] if |x| >= n/2.
func encodeSigned[I bignum.Integer[I]](ek *paillier.EncryptionKey[I], x *big.Int) (m I, err error) {

	abs := m.FromBig(new(big.Int).Abs(x))

	if abs.Cmp(ek.Half()) >= 0 {
		return m, fmt.Errorf("%w: |%v| >= n/2", ErrEncodingOverflow, x)
	}

	if x.Sign() < 0 {
		return ek.N().Sub(abs), nil
	}

	return abs, nil
}

// decodeSigned maps m in [0, n) to (-n/2, n/2).
func decodeSigned[I bignum.Integer[I]](ek *paillier.EncryptionKey[I], m I) *big.Int {
	if m.Cmp(ek.Half()) < 0 {
		return m.Big()
	}
	return new(big.Int).Neg(ek.N().Sub(m).Big())
}

// isSigned returns true if T is a signed integer type.
func isSigned[T constraints.Integer]() bool {
	var x T
	x--
	return x < 0
}

// toBig returns v as a *big.Int.
func toBig[T constraints.Integer](v T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// fromBig narrows x to T and returns an error wrapping
// [bignum.ErrNarrowing] if x does not fit.
func fromBig[T constraints.Integer](x *big.Int) (v T, err error) {

	if isSigned[T]() {
		if x.IsInt64() {
			if v = T(x.Int64()); int64(v) == x.Int64() {
				return v, nil
			}
		}
	} else if x.IsUint64() {
		if v = T(x.Uint64()); uint64(v) == x.Uint64() {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %v does not fit %T", bignum.ErrNarrowing, x, v)
}

// fromInt64 narrows x to T.
func fromInt64[T constraints.Integer](x int64) (v T, err error) {
	if v = T(x); int64(v) != x || (x < 0) != (v < 0) {
		return 0, fmt.Errorf("%w: %d does not fit %T", bignum.ErrNarrowing, x, v)
	}
	return
}

// fromUint64 narrows x to T.
func fromUint64[T constraints.Integer](x uint64) (v T, err error) {
	if v = T(x); uint64(v) != x || v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit %T", bignum.ErrNarrowing, x, v)
	}
	return
}
