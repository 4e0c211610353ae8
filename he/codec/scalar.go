package codec

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/paillier/schemes/paillier"
	"github.com/tuneinsight/paillier/utils/bignum"
)

// Scalar is the encryption of a single integer of type T.
type Scalar[I bignum.Integer[I], T constraints.Integer] struct {
	Ciphertext *paillier.Ciphertext[I]
}

// EncryptScalar encodes v under the signed convention and encrypts it.
func EncryptScalar[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], v T) (*Scalar[I, T], error) {

	m, err := encodeSigned(e.ek, toBig(v))
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptScalar: %w", err)
	}

	ct, err := e.enc.EncryptNew(paillier.NewPlaintext(m))
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptScalar: %w", err)
	}

	return &Scalar[I, T]{Ciphertext: ct}, nil
}

// DecryptScalar decrypts and decodes s. It returns an error wrapping
// [bignum.ErrNarrowing] if the decrypted value does not fit T.
func DecryptScalar[I bignum.Integer[I], T constraints.Integer](d *Decoder[I], s *Scalar[I, T]) (v T, err error) {

	m, err := d.decrypt(s.Ciphertext)
	if err != nil {
		return v, fmt.Errorf("cannot DecryptScalar: %w", err)
	}

	if v, err = fromBig[T](decodeSigned(d.ek, m)); err != nil {
		return v, fmt.Errorf("cannot DecryptScalar: %w", err)
	}

	return
}

// AddScalar returns the encryption of a + b.
func AddScalar[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a, b *Scalar[I, T]) (*Scalar[I, T], error) {
	ct, err := e.eval.Add(a.Ciphertext, b.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot AddScalar: %w", err)
	}
	return &Scalar[I, T]{Ciphertext: ct}, nil
}

// SubScalar returns the encryption of a - b.
func SubScalar[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a, b *Scalar[I, T]) (*Scalar[I, T], error) {
	ct, err := e.eval.Sub(a.Ciphertext, b.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot SubScalar: %w", err)
	}
	return &Scalar[I, T]{Ciphertext: ct}, nil
}

// MulScalar returns the encryption of k * a. Negative multipliers are
// mapped with the signed convention.
func MulScalar[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a *Scalar[I, T], k T) (*Scalar[I, T], error) {

	ct, err := mulSigned(e, a.Ciphertext, k)
	if err != nil {
		return nil, fmt.Errorf("cannot MulScalar: %w", err)
	}

	return &Scalar[I, T]{Ciphertext: ct}, nil
}

// RerandomizeScalar returns a fresh encryption of the value of a.
func RerandomizeScalar[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a *Scalar[I, T]) (*Scalar[I, T], error) {
	ct, err := e.enc.Rerandomize(a.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot RerandomizeScalar: %w", err)
	}
	return &Scalar[I, T]{Ciphertext: ct}, nil
}

// DotScalar returns the encryption of the inner product of as and ks.
func DotScalar[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], as []*Scalar[I, T], ks []T) (*Scalar[I, T], error) {

	if len(as) != len(ks) {
		return nil, fmt.Errorf("cannot DotScalar: %w: %d ciphertexts and %d multipliers", ErrShapeMismatch, len(as), len(ks))
	}

	cts := make([]*paillier.Ciphertext[I], len(as))
	pts := make([]*paillier.Plaintext[I], len(ks))

	for i := range as {

		m, err := encodeSigned(e.ek, toBig(ks[i]))
		if err != nil {
			return nil, fmt.Errorf("cannot DotScalar: %w", err)
		}

		cts[i] = as[i].Ciphertext
		pts[i] = paillier.NewPlaintext(m)
	}

	ct, err := e.eval.InnerProduct(cts, pts)
	if err != nil {
		return nil, fmt.Errorf("cannot DotScalar: %w", err)
	}

	return &Scalar[I, T]{Ciphertext: ct}, nil
}

// mulSigned returns ct^k with k mapped into [0, n) under the signed convention.
func mulSigned[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], ct *paillier.Ciphertext[I], k T) (*paillier.Ciphertext[I], error) {

	m, err := encodeSigned(e.ek, toBig(k))
	if err != nil {
		return nil, err
	}

	return e.eval.Mul(ct, paillier.NewPlaintext(m))
}
