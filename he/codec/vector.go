package codec

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/paillier/schemes/paillier"
	"github.com/tuneinsight/paillier/utils"
	"github.com/tuneinsight/paillier/utils/bignum"
)

// Vector is the packed encryption of a vector of integers of type T.
//
// Value i is stored in lane i%Lanes of ciphertext i/Lanes, where lane j
// occupies bits [j*W, (j+1)*W) of the signed packed integer
// P = sum_j v_j * 2^(j*W). Lanes of unsigned types hold [0, 2^W) and lanes
// of signed types hold [-2^(W-1), 2^(W-1)).
//
// Homomorphic operations act lane-wise only as long as every lane stays
// within its range: a lane that overflows carries into the next lane and
// the corruption cannot be detected at decryption. Callers must bound the
// values, the number of additions and the multipliers accordingly.
type Vector[I bignum.Integer[I], T constraints.Integer] struct {
	Ciphertexts []*paillier.Ciphertext[I]
	Len         int
}

// laneRange returns the bounds [lo, hi) of a lane of width w for T.
func laneRange[T constraints.Integer](w int) (lo, hi *big.Int) {
	hi = new(big.Int).Lsh(big.NewInt(1), uint(w))
	lo = new(big.Int)
	if isSigned[T]() {
		hi.Rsh(hi, 1)
		lo.Neg(hi)
	}
	return
}

// pack returns P = sum_j v_j * 2^(j*w) and an error wrapping
// [ErrLaneOverflow] if a value is outside [lo, hi).
func pack[T constraints.Integer](v []T, w int, lo, hi *big.Int, offset int) (*big.Int, error) {

	P := new(big.Int)

	for j := len(v) - 1; j >= 0; j-- {

		x := toBig(v[j])

		if x.Cmp(lo) < 0 || x.Cmp(hi) >= 0 {
			return nil, fmt.Errorf("%w: value %v at index %d is outside [%v, %v)", ErrLaneOverflow, x, offset+j, lo, hi)
		}

		P.Lsh(P, uint(w))
		P.Add(P, x)
	}

	return P, nil
}

// EncryptVector packs v into ceil(len(v)/Lanes) ciphertexts. It returns an
// error wrapping [ErrLaneOverflow] if a value does not fit its lane.
func EncryptVector[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], v []T) (*Vector[I, T], error) {

	w := e.code.LaneWidth()
	lo, hi := laneRange[T](w)

	cts := make([]*paillier.Ciphertext[I], 0, (len(v)+e.lanes-1)/e.lanes)

	for i, chunk := range utils.Chunks(v, e.lanes) {

		P, err := pack(chunk, w, lo, hi, i*e.lanes)
		if err != nil {
			return nil, fmt.Errorf("cannot EncryptVector: %w", err)
		}

		m, err := encodeSigned(e.ek, P)
		if err != nil {
			// Sanity check, this error should not happen.
			panic(fmt.Errorf("cannot EncryptVector: %w", err))
		}

		ct, err := e.enc.EncryptNew(paillier.NewPlaintext(m))
		if err != nil {
			return nil, fmt.Errorf("cannot EncryptVector: %w", err)
		}

		cts = append(cts, ct)
	}

	return &Vector[I, T]{Ciphertexts: cts, Len: len(v)}, nil
}

// DecryptVector decrypts and unpacks v. Each lane is read modulo 2^W and,
// for signed types, mapped to [-2^(W-1), 2^(W-1)).
func DecryptVector[I bignum.Integer[I], T constraints.Integer](d *Decoder[I], v *Vector[I, T]) ([]T, error) {

	if want := (v.Len + d.lanes - 1) / d.lanes; want != len(v.Ciphertexts) {
		return nil, fmt.Errorf("cannot DecryptVector: %w: %d values need %d ciphertexts but have %d", ErrShapeMismatch, v.Len, want, len(v.Ciphertexts))
	}

	values := make([]T, 0, v.Len)

	for i, ct := range v.Ciphertexts {

		m, err := d.decrypt(ct)
		if err != nil {
			return nil, fmt.Errorf("cannot DecryptVector: %w", err)
		}

		lanes := min(d.lanes, v.Len-i*d.lanes)

		var chunk []T
		if isSigned[T]() {
			chunk, err = unpackSigned[I, T](d.ek, m, d.code.LaneWidth(), lanes)
		} else {
			chunk, err = unpackUnsigned[I, T](d.ek, m, d.code.LaneWidth(), lanes)
		}

		if err != nil {
			return nil, fmt.Errorf("cannot DecryptVector: %w", err)
		}

		values = append(values, chunk...)
	}

	return values, nil
}

// lane returns the w least significant bits of x and x >> w.
func lane[I bignum.Integer[I]](x I, w int) (uint64, I) {
	q := x.Rsh(uint(w))
	r, err := x.Sub(q.Lsh(uint(w))).Uint64()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}
	return r, q
}

// unpackUnsigned reads lanes values of w bits from the signed value P of
// m, taken modulo 2^(lanes*w). A borrow out of the top lane, such as
// [1, 0] - [2, 0], leaves every lane at 2^w - 1.
func unpackUnsigned[I bignum.Integer[I], T constraints.Integer](ek *paillier.EncryptionKey[I], m I, w, lanes int) (values []T, err error) {

	P := decodeSigned(ek, m)
	P.Mod(P, new(big.Int).Lsh(big.NewInt(1), uint(lanes*w)))
	m = m.FromBig(P)

	values = make([]T, lanes)

	var r uint64
	for j := range values {
		r, m = lane(m, w)
		if values[j], err = fromUint64[T](r); err != nil {
			return nil, err
		}
	}

	return
}

// unpackSigned reads lanes balanced digits of w bits from the signed
// value of m.
func unpackSigned[I bignum.Integer[I], T constraints.Integer](ek *paillier.EncryptionKey[I], m I, w, lanes int) (values []T, err error) {

	// |P| and its sign; the digits of |P| are negated at the end
	neg := m.Cmp(ek.Half()) >= 0
	if neg {
		m = ek.N().Sub(m)
	}

	one := bignum.One[I]()

	// the modulus 2^w wraps to 0 for w = 64, which the uint64 arithmetic
	// below relies on
	mod := uint64(1) << uint(w)
	half := uint64(1) << uint(w-1)

	values = make([]T, lanes)

	var r uint64
	for j := range values {

		r, m = lane(m, w)

		// balanced digit in [-2^(w-1), 2^(w-1)) for P >= 0 and in
		// (-2^(w-1), 2^(w-1)] for P < 0 before negation
		if r > half || (r == half && !neg) {
			r -= mod
			m = m.Add(one)
		}

		if neg {
			r = -r
		}

		if values[j], err = fromInt64[T](int64(r)); err != nil {
			return nil, err
		}
	}

	return
}

func checkShapes[I bignum.Integer[I], T constraints.Integer](a, b *Vector[I, T]) error {
	if a.Len != b.Len || len(a.Ciphertexts) != len(b.Ciphertexts) {
		return fmt.Errorf("%w: vectors of length %d and %d", ErrShapeMismatch, a.Len, b.Len)
	}
	return nil
}

// AddVector returns the lane-wise sum of a and b.
func AddVector[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a, b *Vector[I, T]) (*Vector[I, T], error) {

	if err := checkShapes(a, b); err != nil {
		return nil, fmt.Errorf("cannot AddVector: %w", err)
	}

	cts := make([]*paillier.Ciphertext[I], len(a.Ciphertexts))

	for i := range cts {
		var err error
		if cts[i], err = e.eval.Add(a.Ciphertexts[i], b.Ciphertexts[i]); err != nil {
			return nil, fmt.Errorf("cannot AddVector: %w", err)
		}
	}

	return &Vector[I, T]{Ciphertexts: cts, Len: a.Len}, nil
}

// SubVector returns the lane-wise difference of a and b.
func SubVector[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a, b *Vector[I, T]) (*Vector[I, T], error) {

	if err := checkShapes(a, b); err != nil {
		return nil, fmt.Errorf("cannot SubVector: %w", err)
	}

	cts := make([]*paillier.Ciphertext[I], len(a.Ciphertexts))

	for i := range cts {
		var err error
		if cts[i], err = e.eval.Sub(a.Ciphertexts[i], b.Ciphertexts[i]); err != nil {
			return nil, fmt.Errorf("cannot SubVector: %w", err)
		}
	}

	return &Vector[I, T]{Ciphertexts: cts, Len: a.Len}, nil
}

// MulVector returns the lane-wise product of a with the scalar k.
func MulVector[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a *Vector[I, T], k T) (*Vector[I, T], error) {

	cts := make([]*paillier.Ciphertext[I], len(a.Ciphertexts))

	for i := range cts {
		var err error
		if cts[i], err = mulSigned(e, a.Ciphertexts[i], k); err != nil {
			return nil, fmt.Errorf("cannot MulVector: %w", err)
		}
	}

	return &Vector[I, T]{Ciphertexts: cts, Len: a.Len}, nil
}

// RerandomizeVector returns a fresh encryption of the values of a.
func RerandomizeVector[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a *Vector[I, T]) (*Vector[I, T], error) {

	cts := make([]*paillier.Ciphertext[I], len(a.Ciphertexts))

	for i := range cts {
		var err error
		if cts[i], err = e.enc.Rerandomize(a.Ciphertexts[i]); err != nil {
			return nil, fmt.Errorf("cannot RerandomizeVector: %w", err)
		}
	}

	return &Vector[I, T]{Ciphertexts: cts, Len: a.Len}, nil
}
