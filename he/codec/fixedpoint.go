package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/paillier/schemes/paillier"
	"github.com/tuneinsight/paillier/utils/bignum"
)

// Fixed is the encryption of a fixed-point number x, stored as the signed
// integer round(x * Base^Exponent).
type Fixed[I bignum.Integer[I]] struct {
	Ciphertext *paillier.Ciphertext[I]
	Exponent   int
}

// encodePrec returns the precision used to scale values at the given
// exponent.
func (c Code) encodePrec(exponent int) uint {
	return 64 + uint(c.ScaleAt(exponent).BitLen())
}

// encodeFixed returns round(x * Base^exponent) mapped into [0, n), with
// halves rounded away from zero.
func (e Encoder[I]) encodeFixed(x *big.Float, exponent int) (m I, err error) {

	if x.IsInf() {
		return m, fmt.Errorf("%w: %v", ErrNotFinite, x)
	}

	prec := e.code.encodePrec(exponent) + x.Prec()

	scaled := bignum.NewFloat(x, prec)
	scaled.Mul(scaled, bignum.NewFloat(e.code.ScaleAt(exponent), prec))

	return encodeSigned(e.ek, bignum.RoundToInt(scaled))
}

// EncryptFloat encrypts x at the exponent of the code.
// It returns an error wrapping [ErrNotFinite] for NaN and infinities and
// [ErrEncodingOverflow] if the scaled value does not fit the signed
// plaintext range.
func (e Encoder[I]) EncryptFloat(x float64) (*Fixed[I], error) {

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("cannot EncryptFloat: %w: %v", ErrNotFinite, x)
	}

	f, err := e.EncryptBigFloat(new(big.Float).SetFloat64(x))
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptFloat: %w", err)
	}

	return f, nil
}

// EncryptBigFloat encrypts x at the exponent of the code.
func (e Encoder[I]) EncryptBigFloat(x *big.Float) (*Fixed[I], error) {

	m, err := e.encodeFixed(x, e.code.Exponent())
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptBigFloat: %w", err)
	}

	ct, err := e.enc.EncryptNew(paillier.NewPlaintext(m))
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptBigFloat: %w", err)
	}

	return &Fixed[I]{Ciphertext: ct, Exponent: e.code.Exponent()}, nil
}

// AddFixed returns the encryption of a + b. The operand with the smaller
// exponent is first rescaled homomorphically to the larger exponent.
func (e Encoder[I]) AddFixed(a, b *Fixed[I]) (*Fixed[I], error) {

	a, b, err := e.align(a, b)
	if err != nil {
		return nil, fmt.Errorf("cannot AddFixed: %w", err)
	}

	ct, err := e.eval.Add(a.Ciphertext, b.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot AddFixed: %w", err)
	}

	return &Fixed[I]{Ciphertext: ct, Exponent: a.Exponent}, nil
}

// SubFixed returns the encryption of a - b, aligning exponents as [Encoder.AddFixed].
func (e Encoder[I]) SubFixed(a, b *Fixed[I]) (*Fixed[I], error) {

	a, b, err := e.align(a, b)
	if err != nil {
		return nil, fmt.Errorf("cannot SubFixed: %w", err)
	}

	ct, err := e.eval.Sub(a.Ciphertext, b.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot SubFixed: %w", err)
	}

	return &Fixed[I]{Ciphertext: ct, Exponent: a.Exponent}, nil
}

// MulFixed returns the encryption of a * x, where x is encoded at the
// exponent of the code. The exponent of the result is the sum of both
// exponents.
func (e Encoder[I]) MulFixed(a *Fixed[I], x float64) (*Fixed[I], error) {

	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("cannot MulFixed: %w: %v", ErrNotFinite, x)
	}

	k, err := e.encodeFixed(new(big.Float).SetFloat64(x), e.code.Exponent())
	if err != nil {
		return nil, fmt.Errorf("cannot MulFixed: %w", err)
	}

	ct, err := e.eval.Mul(a.Ciphertext, paillier.NewPlaintext(k))
	if err != nil {
		return nil, fmt.Errorf("cannot MulFixed: %w", err)
	}

	return &Fixed[I]{Ciphertext: ct, Exponent: a.Exponent + e.code.Exponent()}, nil
}

// align multiplies the operand of smaller exponent by Base^delta.
func (e Encoder[I]) align(a, b *Fixed[I]) (*Fixed[I], *Fixed[I], error) {

	if a.Exponent == b.Exponent {
		return a, b, nil
	}

	if a.Exponent > b.Exponent {
		b, a, err := e.align(b, a)
		return a, b, err
	}

	var zero I
	k := zero.FromBig(e.code.ScaleAt(b.Exponent - a.Exponent))

	if k.Cmp(e.ek.Half()) >= 0 {
		return nil, nil, fmt.Errorf("%w: cannot align exponents %d and %d", ErrEncodingOverflow, a.Exponent, b.Exponent)
	}

	ct, err := e.eval.Mul(a.Ciphertext, paillier.NewPlaintext(k))
	if err != nil {
		return nil, nil, err
	}

	return &Fixed[I]{Ciphertext: ct, Exponent: b.Exponent}, b, nil
}

// DecryptBigFloat decrypts f and returns m / Base^Exponent.
func (d Decoder[I]) DecryptBigFloat(f *Fixed[I]) (*big.Float, error) {

	if f.Exponent < 0 {
		return nil, fmt.Errorf("cannot DecryptBigFloat: negative exponent %d", f.Exponent)
	}

	m, err := d.decrypt(f.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("cannot DecryptBigFloat: %w", err)
	}

	prec := uint(d.ek.LogN()) + d.code.encodePrec(f.Exponent)

	x := bignum.NewFloat(decodeSigned(d.ek, m), prec)

	return x.Quo(x, bignum.NewFloat(d.code.ScaleAt(f.Exponent), prec)), nil
}

// DecryptFloat decrypts f and returns the nearest float64 to
// m / Base^Exponent.
func (d Decoder[I]) DecryptFloat(f *Fixed[I]) (float64, error) {

	x, err := d.DecryptBigFloat(f)
	if err != nil {
		return 0, fmt.Errorf("cannot DecryptFloat: %w", err)
	}

	f64, _ := x.Float64()

	return f64, nil
}
