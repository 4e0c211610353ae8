// Package bignum defines the arbitrary-precision integer capability the
// cryptosystem is written against, along with arbitrary-precision helpers.
package bignum

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrNarrowing is returned when a value does not fit the requested
// fixed-width type.
var ErrNarrowing = errors.New("value does not fit the target type")

// Integer is the capability a big-integer backend must provide.
//
// Implementations are immutable value types: every method returns a
// fresh value and never mutates its receiver or its arguments, so values
// may be shared freely between goroutines. The zero value of I must be
// usable as a receiver for the constructor and sampling methods, which
// ignore the receiver's value.
//
// Backends over natural numbers (no sign) must panic on a Sub whose
// result would be negative; IsNegative then always reports false.
type Integer[I any] interface {
	fmt.Stringer

	// FromUint64 returns x as an I.
	FromUint64(x uint64) I
	// FromBig returns x as an I. Unsigned backends panic on negative x.
	FromBig(x *big.Int) I
	// Big returns the value as a new *big.Int.
	Big() *big.Int
	// Bytes returns the absolute value as a big-endian byte slice.
	Bytes() []byte
	// Uint64 narrows the value to an uint64 and returns ErrNarrowing
	// if the value is negative or exceeds 64 bits.
	Uint64() (uint64, error)

	Add(y I) I
	Sub(y I) I
	Mul(y I) I
	// Quo returns the truncated quotient of the receiver by y.
	Quo(y I) I
	// Mod returns the receiver modulo m, in [0, m).
	Mod(m I) I
	// ModInverse returns the inverse of the receiver modulo m and
	// false if no inverse exists.
	ModInverse(m I) (I, bool)
	GCD(y I) I
	// ModPow returns receiver^e mod m.
	ModPow(e, m I) I
	Lsh(n uint) I
	Rsh(n uint) I

	// Bit returns the value of the i-th bit.
	Bit(i int) uint
	// SetBit returns a copy of the receiver with the i-th bit set to b.
	SetBit(i int, b uint) I
	BitLen() int

	Cmp(y I) int
	IsZero() bool
	IsEven() bool
	IsNegative() bool
	// ProbablyPrime runs the given number of Miller-Rabin rounds.
	ProbablyPrime(rounds int) bool

	// SampleBelow samples uniformly in [0, upper).
	SampleBelow(r io.Reader, upper I) (I, error)
	// SampleRange samples uniformly in [lower, upper).
	SampleRange(r io.Reader, lower, upper I) (I, error)
	// SampleBits samples uniformly in [0, 2^bits).
	SampleBits(r io.Reader, bits int) (I, error)
}

// One returns 1 in the backend I.
func One[I Integer[I]]() I {
	var zero I
	return zero.FromUint64(1)
}

// Two returns 2 in the backend I.
func Two[I Integer[I]]() I {
	var zero I
	return zero.FromUint64(2)
}

// Zero returns 0 in the backend I.
func Zero[I Integer[I]]() I {
	var zero I
	return zero.FromUint64(0)
}

// LCM returns the least common multiple of a and b.
func LCM[I Integer[I]](a, b I) I {
	return a.Mul(b).Quo(a.GCD(b))
}

// ModSub returns (x - y) mod m for x, y >= 0 without going through a
// negative intermediate value.
func ModSub[I Integer[I]](x, y, m I) I {
	x = x.Mod(m)
	y = y.Mod(m)
	if x.Cmp(y) >= 0 {
		return x.Sub(y)
	}
	return x.Add(m).Sub(y)
}

// Max returns the larger of a and b.
func Max[I Integer[I]](a, b I) I {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Equal returns true if a and b hold the same value.
func Equal[I Integer[I]](a, b I) bool {
	return a.Cmp(b) == 0
}
