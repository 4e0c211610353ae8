// Package primes generates probable primes against the [bignum.Integer]
// capability.
package primes

import (
	"errors"
	"fmt"
	"io"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// MinBits is the smallest supported prime bit-length.
const MinBits = 16

// ErrExhausted is returned when no prime is found within the attempt budget.
var ErrExhausted = errors.New("prime search exhausted")

// smallPrimes are the odd primes whose product fits an uint64.
var smallPrimes = []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// smallPrimesProduct is the product of smallPrimes.
const smallPrimesProduct uint64 = 16294579238595022365

// Generate samples a probable prime of exactly bits bits from r.
//
// Candidates have their two most significant bits set, so that the
// product of two such primes has exactly 2*bits bits, and their least
// significant bit set. Candidates divisible by a small prime are rejected
// before running rounds Miller-Rabin iterations.
//
// Errors returned by r are returned as is. ErrExhausted is returned after
// attempts candidates without a prime; attempts <= 0 selects 64*bits.
func Generate[I bignum.Integer[I]](r io.Reader, bits, rounds, attempts int) (p I, err error) {

	if bits < MinBits {
		return p, fmt.Errorf("cannot Generate: bit-length %d is smaller than %d", bits, MinBits)
	}

	if attempts <= 0 {
		attempts = 64 * bits
	}

	var zero I
	product := zero.FromUint64(smallPrimesProduct)

	for i := 0; i < attempts; i++ {

		if p, err = zero.SampleBits(r, bits); err != nil {
			return
		}

		p = p.SetBit(bits-1, 1).SetBit(bits-2, 1).SetBit(0, 1)

		if !sieve(p, product) {
			continue
		}

		if p.ProbablyPrime(rounds) {
			return p, nil
		}
	}

	return p, fmt.Errorf("cannot Generate: %w after %d candidates of %d bits", ErrExhausted, attempts, bits)
}

// sieve returns false if p has a small prime factor.
func sieve[I bignum.Integer[I]](p, product I) bool {

	residue, err := p.Mod(product).Uint64()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	for _, q := range smallPrimes {
		if residue%q == 0 {
			return p.Cmp(p.FromUint64(q)) == 0
		}
	}

	return true
}

// IsPrime returns true if x is a probable prime, after a small-prime
// sieve and rounds Miller-Rabin iterations.
func IsPrime[I bignum.Integer[I]](x I, rounds int) bool {

	if x.IsNegative() || x.Cmp(x.FromUint64(2)) < 0 {
		return false
	}

	if x.IsEven() {
		return x.Cmp(x.FromUint64(2)) == 0
	}

	if !sieve(x, x.FromUint64(smallPrimesProduct)) {
		return false
	}

	return x.ProbablyPrime(rounds)
}
