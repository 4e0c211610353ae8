package paillier

import (
	"fmt"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// Decryptor is the private-key capability of the scheme.
// It is implemented by [StandardDecryptionKey] and [CRTDecryptionKey],
// which are two representations of the same key material and agree on
// every valid ciphertext.
type Decryptor[I bignum.Integer[I]] interface {
	// Decrypt decrypts ct. It checks that ct is a nonzero element of
	// [0, n^2) tagged with the key (or untagged) but assumes that ct is a
	// well-formed encryption.
	Decrypt(ct *Ciphertext[I]) (*Plaintext[I], error)
	// DecryptUntrusted decrypts ct after checking that it is a well-formed
	// encryption under the key. It must be used on ciphertexts received
	// from untrusted parties.
	DecryptUntrusted(ct *Ciphertext[I]) (*Plaintext[I], error)
	// EncryptionKey returns the public key matching the decryption key.
	EncryptionKey() *EncryptionKey[I]
}

// StandardDecryptionKey decrypts with the full-modulus exponent
// lambda = lcm(p-1, q-1). It does not retain the factorization of n.
type StandardDecryptionKey[I bignum.Integer[I]] struct {
	ek     *EncryptionKey[I]
	lambda I
	mu     I
}

// NewStandardDecryptionKey derives the [StandardDecryptionKey] of kp.
func NewStandardDecryptionKey[I bignum.Integer[I]](kp *Keypair[I]) *StandardDecryptionKey[I] {

	one := bignum.One[I]()
	ek := kp.EncryptionKey()

	lambda := bignum.LCM(kp.p.Sub(one), kp.q.Sub(one))

	// mu = L(g^lambda mod n^2)^-1 mod n with g = n+1
	g := ek.n.Add(one)
	mu, ok := lfunc(g.ModPow(lambda, ek.nn), ek.n).ModInverse(ek.n)
	if !ok {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewStandardDecryptionKey: L(g^lambda) is not invertible modulo n"))
	}

	return &StandardDecryptionKey[I]{
		ek:     ek,
		lambda: lambda,
		mu:     mu,
	}
}

// EncryptionKey returns the public key matching the decryption key.
func (dk StandardDecryptionKey[I]) EncryptionKey() *EncryptionKey[I] {
	return dk.ek
}

// Lambda returns lcm(p-1, q-1).
func (dk StandardDecryptionKey[I]) Lambda() I {
	return dk.lambda
}

// Mu returns L(g^lambda mod n^2)^-1 mod n.
func (dk StandardDecryptionKey[I]) Mu() I {
	return dk.mu
}

// Decrypt decrypts ct as L(c^lambda mod n^2) * mu mod n.
func (dk StandardDecryptionKey[I]) Decrypt(ct *Ciphertext[I]) (pt *Plaintext[I], err error) {

	if err = dk.ek.checkCiphertext(ct); err != nil {
		return nil, fmt.Errorf("cannot Decrypt: %w", err)
	}

	u := ct.Value.ModPow(dk.lambda, dk.ek.nn)
	if u.IsZero() {
		return nil, fmt.Errorf("cannot Decrypt: %w: c^lambda = 0 mod n^2", ErrMalformedCiphertext)
	}

	return NewPlaintext(lfunc(u, dk.ek.n).Mul(dk.mu).Mod(dk.ek.n)), nil
}

// DecryptUntrusted decrypts ct after checking that gcd(c, n) = 1 and that
// c^lambda = 1 mod n.
func (dk StandardDecryptionKey[I]) DecryptUntrusted(ct *Ciphertext[I]) (pt *Plaintext[I], err error) {

	if err = dk.ek.checkCiphertext(ct); err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	if err = dk.ek.checkUnit(ct); err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	u := ct.Value.ModPow(dk.lambda, dk.ek.nn)

	l, err := lfuncChecked(u, dk.ek.n)
	if err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	return NewPlaintext(l.Mul(dk.mu).Mod(dk.ek.n)), nil
}

// lfunc returns (x-1)/d for x > 0.
func lfunc[I bignum.Integer[I]](x, d I) I {
	return x.Sub(bignum.One[I]()).Quo(d)
}

// lfuncChecked returns (x-1)/d and an error if x = 0 or d does not divide x-1.
func lfuncChecked[I bignum.Integer[I]](x, d I) (I, error) {
	if x.IsZero() {
		return x, fmt.Errorf("%w: L(0) is undefined", ErrMalformedCiphertext)
	}
	x = x.Sub(bignum.One[I]())
	if !x.Mod(d).IsZero() {
		return x, fmt.Errorf("%w: L(x) is not an integer", ErrMalformedCiphertext)
	}
	return x.Quo(d), nil
}
