package codec

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// Matrix is the packed encryption of a Rows x Cols matrix, flattened in
// row-major order into a [Vector].
type Matrix[I bignum.Integer[I], T constraints.Integer] struct {
	*Vector[I, T]
	Rows, Cols int
}

// EncryptMatrix packs and encrypts the rows of m, which must all have the
// same length.
func EncryptMatrix[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], m [][]T) (*Matrix[I, T], error) {

	rows := len(m)
	var cols int
	if rows > 0 {
		cols = len(m[0])
	}

	flat := make([]T, 0, rows*cols)
	for i := range m {
		if len(m[i]) != cols {
			return nil, fmt.Errorf("cannot EncryptMatrix: %w: row %d has %d columns but row 0 has %d", ErrShapeMismatch, i, len(m[i]), cols)
		}
		flat = append(flat, m[i]...)
	}

	v, err := EncryptVector(e, flat)
	if err != nil {
		return nil, fmt.Errorf("cannot EncryptMatrix: %w", err)
	}

	return &Matrix[I, T]{Vector: v, Rows: rows, Cols: cols}, nil
}

// DecryptMatrix decrypts and unpacks m.
func DecryptMatrix[I bignum.Integer[I], T constraints.Integer](d *Decoder[I], m *Matrix[I, T]) ([][]T, error) {

	if m.Rows*m.Cols != m.Len {
		return nil, fmt.Errorf("cannot DecryptMatrix: %w: %dx%d matrix holds %d values", ErrShapeMismatch, m.Rows, m.Cols, m.Len)
	}

	flat, err := DecryptVector(d, m.Vector)
	if err != nil {
		return nil, fmt.Errorf("cannot DecryptMatrix: %w", err)
	}

	values := make([][]T, m.Rows)
	for i := range values {
		values[i] = flat[i*m.Cols : (i+1)*m.Cols]
	}

	return values, nil
}

// AddMatrix returns the entry-wise sum of a and b.
func AddMatrix[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a, b *Matrix[I, T]) (*Matrix[I, T], error) {

	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, fmt.Errorf("cannot AddMatrix: %w: %dx%d and %dx%d", ErrShapeMismatch, a.Rows, a.Cols, b.Rows, b.Cols)
	}

	v, err := AddVector(e, a.Vector, b.Vector)
	if err != nil {
		return nil, fmt.Errorf("cannot AddMatrix: %w", err)
	}

	return &Matrix[I, T]{Vector: v, Rows: a.Rows, Cols: a.Cols}, nil
}

// MulMatrix returns the entry-wise product of a with the scalar k.
func MulMatrix[I bignum.Integer[I], T constraints.Integer](e *Encoder[I], a *Matrix[I, T], k T) (*Matrix[I, T], error) {

	v, err := MulVector(e, a.Vector, k)
	if err != nil {
		return nil, fmt.Errorf("cannot MulMatrix: %w", err)
	}

	return &Matrix[I, T]{Vector: v, Rows: a.Rows, Cols: a.Cols}, nil
}
