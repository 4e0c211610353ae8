package paillier

import (
	"fmt"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// Evaluator computes on ciphertexts with the public key only.
// Every returned ciphertext is tagged with the key of the evaluator.
type Evaluator[I bignum.Integer[I]] struct {
	ek *EncryptionKey[I]
}

// NewEvaluator creates a new [Evaluator].
func NewEvaluator[I bignum.Integer[I]](ek *EncryptionKey[I]) *Evaluator[I] {
	return &Evaluator[I]{ek: ek}
}

// EncryptionKey returns the key of the evaluator.
func (eval Evaluator[I]) EncryptionKey() *EncryptionKey[I] {
	return eval.ek
}

func (eval Evaluator[I]) check(cts ...*Ciphertext[I]) (err error) {
	for _, ct := range cts {
		if err = eval.ek.checkCiphertext(ct); err != nil {
			return
		}
	}
	return
}

// Add returns c1 * c2 mod n^2, which decrypts to m1 + m2 mod n.
func (eval Evaluator[I]) Add(c1, c2 *Ciphertext[I]) (*Ciphertext[I], error) {

	if err := eval.check(c1, c2); err != nil {
		return nil, fmt.Errorf("cannot Add: %w", err)
	}

	return eval.ek.ciphertext(c1.Value.Mul(c2.Value).Mod(eval.ek.nn)), nil
}

// Sub returns c1 * c2^-1 mod n^2, which decrypts to m1 - m2 mod n.
func (eval Evaluator[I]) Sub(c1, c2 *Ciphertext[I]) (*Ciphertext[I], error) {

	if err := eval.check(c1, c2); err != nil {
		return nil, fmt.Errorf("cannot Sub: %w", err)
	}

	inv, err := eval.inverse(c2)
	if err != nil {
		return nil, fmt.Errorf("cannot Sub: %w", err)
	}

	return eval.ek.ciphertext(c1.Value.Mul(inv).Mod(eval.ek.nn)), nil
}

// Neg returns c^-1 mod n^2, which decrypts to -m mod n.
func (eval Evaluator[I]) Neg(ct *Ciphertext[I]) (*Ciphertext[I], error) {

	if err := eval.check(ct); err != nil {
		return nil, fmt.Errorf("cannot Neg: %w", err)
	}

	inv, err := eval.inverse(ct)
	if err != nil {
		return nil, fmt.Errorf("cannot Neg: %w", err)
	}

	return eval.ek.ciphertext(inv), nil
}

func (eval Evaluator[I]) inverse(ct *Ciphertext[I]) (I, error) {
	inv, ok := ct.Value.ModInverse(eval.ek.nn)
	if !ok {
		return inv, fmt.Errorf("%w: ciphertext is not invertible modulo n^2", ErrMalformedCiphertext)
	}
	return inv, nil
}

// Mul returns c^k mod n^2, which decrypts to k * m mod n.
// The scalar k must be in [0, n); negative scalars are mapped to n - |k|
// by the caller.
func (eval Evaluator[I]) Mul(ct *Ciphertext[I], k *Plaintext[I]) (*Ciphertext[I], error) {

	if err := eval.check(ct); err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	if err := eval.ek.checkPlaintext(k); err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	return eval.ek.ciphertext(ct.Value.ModPow(k.Value, eval.ek.nn)), nil
}

// AddPlain returns c * (1 + k*n) mod n^2, which decrypts to m + k mod n.
// The ciphertext is not rerandomized.
func (eval Evaluator[I]) AddPlain(ct *Ciphertext[I], k *Plaintext[I]) (*Ciphertext[I], error) {

	if err := eval.check(ct); err != nil {
		return nil, fmt.Errorf("cannot AddPlain: %w", err)
	}

	if err := eval.ek.checkPlaintext(k); err != nil {
		return nil, fmt.Errorf("cannot AddPlain: %w", err)
	}

	gk := k.Value.Mul(eval.ek.n).Add(bignum.One[I]())

	return eval.ek.ciphertext(ct.Value.Mul(gk).Mod(eval.ek.nn)), nil
}

// Sum returns the product of cts mod n^2, which decrypts to the sum of
// their plaintexts mod n.
func (eval Evaluator[I]) Sum(cts ...*Ciphertext[I]) (*Ciphertext[I], error) {

	if len(cts) == 0 {
		return nil, fmt.Errorf("cannot Sum: %w: no operand", ErrOperandCount)
	}

	if err := eval.check(cts...); err != nil {
		return nil, fmt.Errorf("cannot Sum: %w", err)
	}

	acc := cts[0].Value
	for _, ct := range cts[1:] {
		acc = acc.Mul(ct.Value).Mod(eval.ek.nn)
	}

	return eval.ek.ciphertext(acc), nil
}

// InnerProduct returns the product of cts[i]^ks[i] mod n^2, which decrypts
// to the inner product of the plaintexts of cts with ks, mod n.
func (eval Evaluator[I]) InnerProduct(cts []*Ciphertext[I], ks []*Plaintext[I]) (*Ciphertext[I], error) {

	if len(cts) == 0 || len(cts) != len(ks) {
		return nil, fmt.Errorf("cannot InnerProduct: %w: %d ciphertexts and %d scalars", ErrOperandCount, len(cts), len(ks))
	}

	if err := eval.check(cts...); err != nil {
		return nil, fmt.Errorf("cannot InnerProduct: %w", err)
	}

	nn := eval.ek.nn
	acc := bignum.One[I]()

	for i := range cts {
		if err := eval.ek.checkPlaintext(ks[i]); err != nil {
			return nil, fmt.Errorf("cannot InnerProduct: %w", err)
		}
		acc = acc.Mul(cts[i].Value.ModPow(ks[i].Value, nn)).Mod(nn)
	}

	return eval.ek.ciphertext(acc), nil
}
