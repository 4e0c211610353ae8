package paillier

import (
	"fmt"

	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/sampling"
)

// Encryptor encrypts plaintexts and rerandomizes ciphertexts under an
// [EncryptionKey].
type Encryptor[I bignum.Integer[I]] struct {
	ek   *EncryptionKey[I]
	prng sampling.PRNG
}

// NewEncryptor creates a new [Encryptor] reading its nonces from a
// [sampling.ThreadSafePRNG].
func NewEncryptor[I bignum.Integer[I]](ek *EncryptionKey[I]) *Encryptor[I] {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return &Encryptor[I]{
		ek:   ek,
		prng: prng,
	}
}

// WithPRNG returns a shallow copy of the receiver reading its nonces from prng.
func (enc Encryptor[I]) WithPRNG(prng sampling.PRNG) *Encryptor[I] {
	enc.prng = prng
	return &enc
}

// EncryptionKey returns the key of the encryptor.
func (enc Encryptor[I]) EncryptionKey() *EncryptionKey[I] {
	return enc.ek
}

// EncryptNew encrypts pt as (1 + m*n) * r^n mod n^2 for a fresh nonce r
// sampled uniformly in [1, n).
func (enc Encryptor[I]) EncryptNew(pt *Plaintext[I]) (ct *Ciphertext[I], err error) {

	if err = enc.ek.checkPlaintext(pt); err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	r, err := enc.sampleNonce()
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptNew: %w", err)
	}

	return enc.encrypt(pt.Value, r), nil
}

// EncryptWithNonce encrypts pt with the caller-chosen nonce r. The
// encryption is deterministic and must only be used with nonces that are
// never reused. It returns an error wrapping [ErrInvalidNonce] if r is not
// in [1, n) or gcd(r, n) != 1.
func (enc Encryptor[I]) EncryptWithNonce(pt *Plaintext[I], r I) (ct *Ciphertext[I], err error) {

	if err = enc.ek.checkPlaintext(pt); err != nil {
		return nil, fmt.Errorf("cannot EncryptWithNonce: %w", err)
	}

	if r.IsNegative() || r.IsZero() || r.Cmp(enc.ek.n) >= 0 {
		return nil, fmt.Errorf("cannot EncryptWithNonce: %w: nonce must be in [1, n)", ErrInvalidNonce)
	}

	if !bignum.Equal(r.GCD(enc.ek.n), bignum.One[I]()) {
		return nil, fmt.Errorf("cannot EncryptWithNonce: %w: nonce is not a unit modulo n", ErrInvalidNonce)
	}

	return enc.encrypt(pt.Value, r), nil
}

// Rerandomize returns c * r^n mod n^2 for a fresh nonce r. The result
// decrypts to the same plaintext as ct.
func (enc Encryptor[I]) Rerandomize(ct *Ciphertext[I]) (*Ciphertext[I], error) {

	if err := enc.ek.checkCiphertext(ct); err != nil {
		return nil, fmt.Errorf("cannot Rerandomize: %w", err)
	}

	r, err := enc.sampleNonce()
	if err != nil {
		return nil, fmt.Errorf("cannot Rerandomize: %w", err)
	}

	nn := enc.ek.nn

	return enc.ek.ciphertext(ct.Value.Mul(r.ModPow(enc.ek.n, nn)).Mod(nn)), nil
}

// encrypt uses g^m = 1 + m*n mod n^2 for g = n+1.
func (enc Encryptor[I]) encrypt(m, r I) *Ciphertext[I] {
	n, nn := enc.ek.n, enc.ek.nn
	gm := m.Mul(n).Add(bignum.One[I]())
	return enc.ek.ciphertext(gm.Mul(r.ModPow(n, nn)).Mod(nn))
}

func (enc Encryptor[I]) sampleNonce() (r I, err error) {
	if r, err = r.SampleRange(enc.prng, bignum.One[I](), enc.ek.n); err != nil {
		return r, fmt.Errorf("%w: %w", ErrRandomness, err)
	}
	return
}
