// Package bigint implements the [bignum.Integer] capability over math/big.
package bigint

import (
	"fmt"
	"io"
	"math/big"

	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/sampling"
)

// Int is an immutable arbitrary-precision signed integer.
// The zero value represents 0.
type Int struct {
	v *big.Int
}

var _ bignum.Integer[Int] = Int{}

// NewInt returns x as an Int. Accepted types are those of [bignum.NewInt].
func NewInt(x interface{}) Int {
	return Int{v: bignum.NewInt(x)}
}

func (x Int) get() *big.Int {
	if x.v == nil {
		return new(big.Int)
	}
	return x.v
}

func wrap(v *big.Int) Int {
	return Int{v: v}
}

func (Int) FromUint64(x uint64) Int {
	return wrap(new(big.Int).SetUint64(x))
}

func (Int) FromBig(x *big.Int) Int {
	return wrap(new(big.Int).Set(x))
}

func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.get())
}

func (x Int) Bytes() []byte {
	return x.get().Bytes()
}

func (x Int) Uint64() (uint64, error) {
	v := x.get()
	if !v.IsUint64() {
		return 0, fmt.Errorf("cannot Uint64: %w: %v", bignum.ErrNarrowing, v)
	}
	return v.Uint64(), nil
}

func (x Int) String() string {
	return x.get().String()
}

func (x Int) Add(y Int) Int {
	return wrap(new(big.Int).Add(x.get(), y.get()))
}

func (x Int) Sub(y Int) Int {
	return wrap(new(big.Int).Sub(x.get(), y.get()))
}

func (x Int) Mul(y Int) Int {
	return wrap(new(big.Int).Mul(x.get(), y.get()))
}

func (x Int) Quo(y Int) Int {
	return wrap(new(big.Int).Quo(x.get(), y.get()))
}

func (x Int) Mod(m Int) Int {
	return wrap(new(big.Int).Mod(x.get(), m.get()))
}

func (x Int) ModInverse(m Int) (Int, bool) {
	inv := new(big.Int).ModInverse(x.get(), m.get())
	if inv == nil {
		return Int{}, false
	}
	return wrap(inv), true
}

func (x Int) GCD(y Int) Int {
	a := new(big.Int).Abs(x.get())
	b := new(big.Int).Abs(y.get())
	return wrap(new(big.Int).GCD(nil, nil, a, b))
}

func (x Int) ModPow(e, m Int) Int {
	return wrap(new(big.Int).Exp(x.get(), e.get(), m.get()))
}

func (x Int) Lsh(n uint) Int {
	return wrap(new(big.Int).Lsh(x.get(), n))
}

func (x Int) Rsh(n uint) Int {
	return wrap(new(big.Int).Rsh(x.get(), n))
}

func (x Int) Bit(i int) uint {
	return x.get().Bit(i)
}

func (x Int) SetBit(i int, b uint) Int {
	v := x.get()
	return wrap(new(big.Int).SetBit(v, i, b))
}

func (x Int) BitLen() int {
	return x.get().BitLen()
}

func (x Int) Cmp(y Int) int {
	return x.get().Cmp(y.get())
}

func (x Int) IsZero() bool {
	return x.get().Sign() == 0
}

func (x Int) IsEven() bool {
	return x.get().Bit(0) == 0
}

func (x Int) IsNegative() bool {
	return x.get().Sign() < 0
}

func (x Int) ProbablyPrime(rounds int) bool {
	return x.get().ProbablyPrime(rounds)
}

func (Int) SampleBelow(r io.Reader, upper Int) (Int, error) {
	n, err := sampling.RandIntBelow(r, upper.get())
	if err != nil {
		return Int{}, err
	}
	return wrap(n), nil
}

func (Int) SampleRange(r io.Reader, lower, upper Int) (Int, error) {
	n, err := sampling.RandIntRange(r, lower.get(), upper.get())
	if err != nil {
		return Int{}, err
	}
	return wrap(n), nil
}

func (Int) SampleBits(r io.Reader, bits int) (Int, error) {
	n, err := sampling.RandIntBits(r, bits)
	if err != nil {
		return Int{}, err
	}
	return wrap(n), nil
}
