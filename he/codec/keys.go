package codec

import (
	"fmt"

	"github.com/tuneinsight/paillier/schemes/paillier"
	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/sampling"
)

// Encoder is an [paillier.EncryptionKey] bound to a [Code]. It encrypts
// application values and evaluates on their encryptions.
type Encoder[I bignum.Integer[I]] struct {
	code  Code
	lanes int
	ek    *paillier.EncryptionKey[I]
	enc   *paillier.Encryptor[I]
	eval  *paillier.Evaluator[I]
}

// NewEncoder binds ek to code. It returns an error wrapping
// [ErrCodeTooLarge] if Lanes*LaneWidth exceeds LogN-2 or if Base^Exponent
// does not fit the signed plaintext range.
func NewEncoder[I bignum.Integer[I]](ek *paillier.EncryptionKey[I], code Code) (*Encoder[I], error) {

	lanes, err := checkCode(ek, code)
	if err != nil {
		return nil, fmt.Errorf("cannot NewEncoder: %w", err)
	}

	return &Encoder[I]{
		code:  code,
		lanes: lanes,
		ek:    ek,
		enc:   paillier.NewEncryptor(ek),
		eval:  paillier.NewEvaluator(ek),
	}, nil
}

// WithPRNG returns a shallow copy of the receiver whose encryptor reads
// from prng.
func (e Encoder[I]) WithPRNG(prng sampling.PRNG) *Encoder[I] {
	e.enc = e.enc.WithPRNG(prng)
	return &e
}

// Code returns the code of the encoder.
func (e Encoder[I]) Code() Code {
	return e.code
}

// Lanes returns the number of lanes of a packed ciphertext.
func (e Encoder[I]) Lanes() int {
	return e.lanes
}

// EncryptionKey returns the key of the encoder.
func (e Encoder[I]) EncryptionKey() *paillier.EncryptionKey[I] {
	return e.ek
}

// Evaluator returns the underlying [paillier.Evaluator].
func (e Encoder[I]) Evaluator() *paillier.Evaluator[I] {
	return e.eval
}

// Decoder is a [paillier.Decryptor] bound to a [Code]. It decrypts and
// decodes application values.
type Decoder[I bignum.Integer[I]] struct {
	code  Code
	lanes int
	ek    *paillier.EncryptionKey[I]
	dk    paillier.Decryptor[I]
}

// NewDecoder binds dk to code, with the same checks as [NewEncoder].
func NewDecoder[I bignum.Integer[I]](dk paillier.Decryptor[I], code Code) (*Decoder[I], error) {

	ek := dk.EncryptionKey()

	lanes, err := checkCode(ek, code)
	if err != nil {
		return nil, fmt.Errorf("cannot NewDecoder: %w", err)
	}

	return &Decoder[I]{
		code:  code,
		lanes: lanes,
		ek:    ek,
		dk:    dk,
	}, nil
}

// Code returns the code of the decoder.
func (d Decoder[I]) Code() Code {
	return d.code
}

// Lanes returns the number of lanes of a packed ciphertext.
func (d Decoder[I]) Lanes() int {
	return d.lanes
}

// decrypt decrypts ct with the bound key.
func (d Decoder[I]) decrypt(ct *paillier.Ciphertext[I]) (I, error) {
	pt, err := d.dk.Decrypt(ct)
	if err != nil {
		var zero I
		return zero, err
	}
	return pt.Value, nil
}

// checkCode returns the number of lanes of code under ek.
func checkCode[I bignum.Integer[I]](ek *paillier.EncryptionKey[I], code Code) (lanes int, err error) {

	budget := ek.LogN() - 2
	maxLanes := budget / code.LaneWidth()

	if maxLanes == 0 {
		return 0, fmt.Errorf("%w: a lane of %d bits exceeds the budget of %d bits", ErrCodeTooLarge, code.LaneWidth(), budget)
	}

	if lanes = code.Lanes(); lanes == 0 {
		lanes = maxLanes
	}

	if lanes > maxLanes {
		return 0, fmt.Errorf("%w: %d lanes of %d bits exceed the budget of %d bits", ErrCodeTooLarge, lanes, code.LaneWidth(), budget)
	}

	var zero I
	if zero.FromBig(code.Scale()).Cmp(ek.Half()) >= 0 {
		return 0, fmt.Errorf("%w: scale %d^%d exceeds n/2", ErrCodeTooLarge, code.Base(), code.Exponent())
	}

	return
}
