package paillier

import (
	"encoding/hex"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// KeyIDSize is the size in bytes of a [KeyID].
const KeyIDSize = 16

// KeyID is a public fingerprint of an encryption key. The zero KeyID
// marks an untagged element.
type KeyID [KeyIDSize]byte

// IsZero returns true if the receiver is the zero KeyID.
func (id KeyID) IsZero() bool {
	return id == KeyID{}
}

// String returns the hexadecimal encoding of the KeyID.
func (id KeyID) String() string {
	return hex.EncodeToString(id[:])
}

// Plaintext is an element of the plaintext space [0, n).
type Plaintext[I bignum.Integer[I]] struct {
	Value I
}

// NewPlaintext returns a new [Plaintext] holding m.
func NewPlaintext[I bignum.Integer[I]](m I) *Plaintext[I] {
	return &Plaintext[I]{Value: m}
}

// CopyNew returns a copy of the receiver.
func (pt Plaintext[I]) CopyNew() *Plaintext[I] {
	return &Plaintext[I]{Value: pt.Value}
}

// Ciphertext is an element of the ciphertext space [0, n^2).
//
// Key tags the ciphertext with the [KeyID] of the key it was produced
// under. Operations reject operands whose tags differ, unless one of them
// is untagged.
type Ciphertext[I bignum.Integer[I]] struct {
	Value I
	Key   KeyID
}

// NewCiphertext returns a new untagged [Ciphertext] holding c.
func NewCiphertext[I bignum.Integer[I]](c I) *Ciphertext[I] {
	return &Ciphertext[I]{Value: c}
}

// CopyNew returns a copy of the receiver.
func (ct Ciphertext[I]) CopyNew() *Ciphertext[I] {
	return &Ciphertext[I]{Value: ct.Value, Key: ct.Key}
}

// Equal returns true if the two ciphertexts are bit-equal and carry the same
// tag. Two ciphertexts decrypting to the same plaintext are in general not
// equal.
func (ct Ciphertext[I]) Equal(other *Ciphertext[I]) bool {
	return ct.Key == other.Key && bignum.Equal(ct.Value, other.Value)
}
