package paillier

import (
	"fmt"
	"log/slog"

	"github.com/zeebo/blake3"

	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/logging"
)

// Keypair stores the two prime factors of the modulus n.
// It holds the only copies of p and q and never prints them.
type Keypair[I bignum.Integer[I]] struct {
	p, q, n I
}

// NewKeypair returns the [Keypair] of the primes p and q.
// It returns an error wrapping [ErrInvalidKeypair] if p or q is not an odd
// probable prime, if p = q, if gcd(n, (p-1)(q-1)) != 1 or if n has fewer
// than [MinLogN] bits.
func NewKeypair[I bignum.Integer[I]](p, q I) (kp *Keypair[I], err error) {

	for _, x := range []I{p, q} {
		if x.IsNegative() || x.IsEven() || !x.ProbablyPrime(DefaultPrimalityRounds) {
			return nil, fmt.Errorf("cannot NewKeypair: %w: factor is not an odd prime", ErrInvalidKeypair)
		}
	}

	if kp, err = newKeypair(p, q); err != nil {
		return nil, fmt.Errorf("cannot NewKeypair: %w", err)
	}

	if kp.n.BitLen() < MinLogN {
		return nil, fmt.Errorf("cannot NewKeypair: %w: modulus has %d bits but at least %d are required", ErrInvalidKeypair, kp.n.BitLen(), MinLogN)
	}

	return
}

// newKeypair checks the distinctness and coprimality of two odd primes.
func newKeypair[I bignum.Integer[I]](p, q I) (*Keypair[I], error) {

	if bignum.Equal(p, q) {
		return nil, fmt.Errorf("%w: p = q", ErrInvalidKeypair)
	}

	one := bignum.One[I]()
	n := p.Mul(q)
	phi := p.Sub(one).Mul(q.Sub(one))

	if !bignum.Equal(n.GCD(phi), one) {
		return nil, fmt.Errorf("%w: gcd(n, (p-1)(q-1)) != 1", ErrInvalidKeypair)
	}

	return &Keypair[I]{p: p, q: q, n: n}, nil
}

// P returns the first prime factor.
func (kp Keypair[I]) P() I {
	return kp.p
}

// Q returns the second prime factor.
func (kp Keypair[I]) Q() I {
	return kp.q
}

// N returns the modulus n = p*q.
func (kp Keypair[I]) N() I {
	return kp.n
}

// LogN returns the bit-length of n.
func (kp Keypair[I]) LogN() int {
	return kp.n.BitLen()
}

// EncryptionKey returns the public [EncryptionKey] of the keypair.
func (kp Keypair[I]) EncryptionKey() *EncryptionKey[I] {
	return newEncryptionKey(kp.n)
}

func (kp Keypair[I]) String() string {
	return fmt.Sprintf("Keypair{LogN=%d, p=%s, q=%s}", kp.LogN(), logging.Placeholder(), logging.Placeholder())
}

func (kp Keypair[I]) GoString() string {
	return kp.String()
}

// LogValue implements [slog.LogValuer].
func (kp Keypair[I]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("LogN", kp.LogN()),
		logging.Redacted("p"),
		logging.Redacted("q"),
	)
}

// EncryptionKey is the public key of the scheme. It is immutable and can be
// shared freely.
type EncryptionKey[I bignum.Integer[I]] struct {
	n, nn, half I
	id          KeyID
}

// NewEncryptionKey returns the [EncryptionKey] of the modulus n.
// It returns an error wrapping [ErrInvalidModulus] if n is not positive, is
// even or has fewer than [MinLogN] bits.
func NewEncryptionKey[I bignum.Integer[I]](n I) (*EncryptionKey[I], error) {

	switch {
	case n.IsNegative() || n.IsZero():
		return nil, fmt.Errorf("cannot NewEncryptionKey: %w: n must be positive", ErrInvalidModulus)
	case n.IsEven():
		return nil, fmt.Errorf("cannot NewEncryptionKey: %w: n must be odd", ErrInvalidModulus)
	case n.BitLen() < MinLogN:
		return nil, fmt.Errorf("cannot NewEncryptionKey: %w: n has %d bits but at least %d are required", ErrInvalidModulus, n.BitLen(), MinLogN)
	}

	return newEncryptionKey(n), nil
}

func newEncryptionKey[I bignum.Integer[I]](n I) *EncryptionKey[I] {
	return &EncryptionKey[I]{
		n:    n,
		nn:   n.Mul(n),
		half: n.Rsh(1).Add(bignum.One[I]()),
		id:   fingerprint(n),
	}
}

// fingerprint returns the first [KeyIDSize] bytes of the blake3 digest of n.
func fingerprint[I bignum.Integer[I]](n I) (id KeyID) {
	digest := blake3.Sum256(n.Bytes())
	copy(id[:], digest[:KeyIDSize])
	return
}

// N returns the modulus n.
func (ek EncryptionKey[I]) N() I {
	return ek.n
}

// NSquared returns n^2.
func (ek EncryptionKey[I]) NSquared() I {
	return ek.nn
}

// Half returns (n+1)/2, the smallest plaintext that encodes a negative
// value under the signed convention.
func (ek EncryptionKey[I]) Half() I {
	return ek.half
}

// LogN returns the bit-length of n.
func (ek EncryptionKey[I]) LogN() int {
	return ek.n.BitLen()
}

// ID returns the [KeyID] of the key.
func (ek EncryptionKey[I]) ID() KeyID {
	return ek.id
}

// Equal returns true if both keys have the same modulus.
func (ek EncryptionKey[I]) Equal(other *EncryptionKey[I]) bool {
	return bignum.Equal(ek.n, other.n)
}

func (ek EncryptionKey[I]) String() string {
	return fmt.Sprintf("EncryptionKey{LogN=%d, ID=%s}", ek.LogN(), ek.id)
}

// checkPlaintext returns an error if pt is not in [0, n).
func (ek EncryptionKey[I]) checkPlaintext(pt *Plaintext[I]) error {
	if pt == nil {
		return fmt.Errorf("%w: nil plaintext", ErrPlaintextOutOfRange)
	}
	if pt.Value.IsNegative() || pt.Value.Cmp(ek.n) >= 0 {
		return fmt.Errorf("%w: plaintext must be in [0, n)", ErrPlaintextOutOfRange)
	}
	return nil
}

// checkCiphertext returns an error if ct is not in [1, n^2) or is tagged
// with another key.
func (ek EncryptionKey[I]) checkCiphertext(ct *Ciphertext[I]) error {
	if ct == nil {
		return fmt.Errorf("%w: nil ciphertext", ErrMalformedCiphertext)
	}
	if !ct.Key.IsZero() && ct.Key != ek.id {
		return fmt.Errorf("%w: ciphertext key %s but have %s", ErrKeyMismatch, ct.Key, ek.id)
	}
	if ct.Value.IsNegative() || ct.Value.Cmp(ek.nn) >= 0 {
		return fmt.Errorf("%w: ciphertext must be in [0, n^2)", ErrCiphertextOutOfRange)
	}
	if ct.Value.IsZero() {
		return fmt.Errorf("%w: zero ciphertext", ErrMalformedCiphertext)
	}
	return nil
}

// checkUnit returns an error if gcd(ct, n) != 1.
func (ek EncryptionKey[I]) checkUnit(ct *Ciphertext[I]) error {
	if !bignum.Equal(ct.Value.GCD(ek.n), bignum.One[I]()) {
		return fmt.Errorf("%w: ciphertext is not a unit modulo n", ErrMalformedCiphertext)
	}
	return nil
}

// ciphertext returns c tagged with the key.
func (ek EncryptionKey[I]) ciphertext(c I) *Ciphertext[I] {
	return &Ciphertext[I]{Value: c, Key: ek.id}
}
