// Package safenum implements the [bignum.Integer] capability over
// github.com/cronokirby/saferith natural numbers.
//
// Modular multiplication, reduction and exponentiation run in saferith's
// constant-time arithmetic. Operations that only occur outside of the
// secret-dependent paths (gcd, inverses, shifts, bit access, primality)
// go through math/big.
//
// Nat holds natural numbers only: Sub panics if the result would be
// negative and IsNegative always returns false.
package safenum

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"

	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/sampling"
)

// Nat is an immutable arbitrary-precision natural number.
// The zero value represents 0.
type Nat struct {
	v *saferith.Nat
}

var _ bignum.Integer[Nat] = Nat{}

// NewNat returns x as a Nat. Accepted types are those of [bignum.NewInt].
func NewNat(x interface{}) Nat {
	return Nat{}.FromBig(bignum.NewInt(x))
}

func (x Nat) get() *saferith.Nat {
	if x.v == nil {
		return new(saferith.Nat).SetUint64(0)
	}
	return x.v
}

func wrap(v *saferith.Nat) Nat {
	return Nat{v: v}
}

func modulus(m Nat) *saferith.Modulus {
	if m.IsZero() {
		panic(fmt.Errorf("cannot use zero as modulus"))
	}
	return saferith.ModulusFromNat(m.get())
}

func (Nat) FromUint64(x uint64) Nat {
	return wrap(new(saferith.Nat).SetUint64(x))
}

func (Nat) FromBig(x *big.Int) Nat {
	if x.Sign() < 0 {
		panic(fmt.Errorf("cannot FromBig: negative value %v", x))
	}
	if x.Sign() == 0 {
		return wrap(new(saferith.Nat).SetUint64(0))
	}
	return wrap(new(saferith.Nat).SetBig(x, x.BitLen()))
}

func (x Nat) Big() *big.Int {
	return x.get().Big()
}

func (x Nat) Bytes() []byte {
	return x.Big().Bytes()
}

func (x Nat) Uint64() (uint64, error) {
	v := x.Big()
	if !v.IsUint64() {
		return 0, fmt.Errorf("cannot Uint64: %w: %v", bignum.ErrNarrowing, v)
	}
	return v.Uint64(), nil
}

func (x Nat) String() string {
	return x.Big().String()
}

func (x Nat) Add(y Nat) Nat {
	return wrap(new(saferith.Nat).Add(x.get(), y.get(), -1))
}

func (x Nat) Sub(y Nat) Nat {
	if x.Cmp(y) < 0 {
		panic(fmt.Errorf("cannot Sub: negative result %v - %v", x, y))
	}
	return x.FromBig(new(big.Int).Sub(x.Big(), y.Big()))
}

func (x Nat) Mul(y Nat) Nat {
	return wrap(new(saferith.Nat).Mul(x.get(), y.get(), -1))
}

func (x Nat) Quo(y Nat) Nat {
	return x.FromBig(new(big.Int).Quo(x.Big(), y.Big()))
}

func (x Nat) Mod(m Nat) Nat {
	return wrap(new(saferith.Nat).Mod(x.get(), modulus(m)))
}

func (x Nat) ModInverse(m Nat) (Nat, bool) {
	inv := new(big.Int).ModInverse(x.Big(), m.Big())
	if inv == nil {
		return Nat{}, false
	}
	return x.FromBig(inv), true
}

func (x Nat) GCD(y Nat) Nat {
	return x.FromBig(new(big.Int).GCD(nil, nil, x.Big(), y.Big()))
}

func (x Nat) ModPow(e, m Nat) Nat {
	mod := modulus(m)
	base := new(saferith.Nat).Mod(x.get(), mod)
	return wrap(new(saferith.Nat).Exp(base, e.get(), mod))
}

func (x Nat) Lsh(n uint) Nat {
	return x.FromBig(new(big.Int).Lsh(x.Big(), n))
}

func (x Nat) Rsh(n uint) Nat {
	return x.FromBig(new(big.Int).Rsh(x.Big(), n))
}

func (x Nat) Bit(i int) uint {
	return x.Big().Bit(i)
}

func (x Nat) SetBit(i int, b uint) Nat {
	v := x.Big()
	return x.FromBig(v.SetBit(v, i, b))
}

func (x Nat) BitLen() int {
	return x.get().TrueLen()
}

func (x Nat) Cmp(y Nat) int {
	gt, eq, _ := x.get().Cmp(y.get())
	switch {
	case eq == 1:
		return 0
	case gt == 1:
		return 1
	default:
		return -1
	}
}

func (x Nat) IsZero() bool {
	return x.get().EqZero() == 1
}

func (x Nat) IsEven() bool {
	return x.Bit(0) == 0
}

func (x Nat) IsNegative() bool {
	return false
}

func (x Nat) ProbablyPrime(rounds int) bool {
	return x.Big().ProbablyPrime(rounds)
}

func (Nat) SampleBelow(r io.Reader, upper Nat) (Nat, error) {
	n, err := sampling.RandIntBelow(r, upper.Big())
	if err != nil {
		return Nat{}, err
	}
	return Nat{}.FromBig(n), nil
}

func (Nat) SampleRange(r io.Reader, lower, upper Nat) (Nat, error) {
	n, err := sampling.RandIntRange(r, lower.Big(), upper.Big())
	if err != nil {
		return Nat{}, err
	}
	return Nat{}.FromBig(n), nil
}

func (Nat) SampleBits(r io.Reader, bits int) (Nat, error) {
	n, err := sampling.RandIntBits(r, bits)
	if err != nil {
		return Nat{}, err
	}
	return Nat{}.FromBig(n), nil
}
