// Package codec maps application values into the plaintext space of the
// Paillier cryptosystem and back.
//
// A [Code] describes the mapping: fixed-point numbers are scaled by
// Base^Exponent and rounded, and packed vectors store Lanes values of
// LaneWidth bits in a single plaintext. Binding a Code to a key yields an
// [Encoder] (public key) or a [Decoder] (private key).
//
// Plaintexts are signed by convention: [0, n/2) holds nonnegative values
// and [n/2, n) holds value - n.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"

	"github.com/tuneinsight/paillier/utils/bignum"
)

var (
	// ErrCodeTooLarge is returned when a [Code] does not fit the plaintext
	// space of a key.
	ErrCodeTooLarge = errors.New("code does not fit the key")
	// ErrEncodingOverflow is returned when a value does not fit the signed
	// plaintext range.
	ErrEncodingOverflow = errors.New("value overflows the plaintext space")
	// ErrNotFinite is returned when encoding a NaN or an infinity.
	ErrNotFinite = errors.New("value is not finite")
	// ErrLaneOverflow is returned when a value does not fit its lane.
	ErrLaneOverflow = errors.New("value overflows its lane")
	// ErrShapeMismatch is returned when operands have different shapes.
	ErrShapeMismatch = errors.New("operands have different shapes")
)

// MaxLaneWidth is the largest supported lane width in bits.
const MaxLaneWidth = 64

// CodeLiteral is a literal representation of a [Code]. It has public fields
// and is used to express unchecked user-defined codes. The [NewCode]
// function is used to generate the actual checked code.
//
// Lanes can be left to zero, in which case the encoders use the largest
// number of lanes that fits the key.
type CodeLiteral struct {
	Base      uint64
	Exponent  int
	LaneWidth int
	Lanes     int `json:",omitempty"`
}

// DefaultCode is a code with six decimal digits of fixed-point precision
// and 64-bit lanes.
var DefaultCode = CodeLiteral{
	Base:      10,
	Exponent:  6,
	LaneWidth: 64,
}

// Code is the checked encoding configuration. Its fields are private and
// immutable.
type Code struct {
	base      uint64
	exponent  int
	laneWidth int
	lanes     int
}

// NewCode instantiates a [Code] from a [CodeLiteral].
func NewCode(cl CodeLiteral) (Code, error) {

	switch {
	case cl.Base < 2:
		return Code{}, fmt.Errorf("cannot NewCode: Base=%d must be at least 2", cl.Base)
	case cl.Exponent < 0:
		return Code{}, fmt.Errorf("cannot NewCode: Exponent=%d is negative", cl.Exponent)
	case cl.LaneWidth < 1 || cl.LaneWidth > MaxLaneWidth:
		return Code{}, fmt.Errorf("cannot NewCode: LaneWidth=%d is outside [1, %d]", cl.LaneWidth, MaxLaneWidth)
	case cl.Lanes < 0:
		return Code{}, fmt.Errorf("cannot NewCode: Lanes=%d is negative", cl.Lanes)
	}

	return Code{
		base:      cl.Base,
		exponent:  cl.Exponent,
		laneWidth: cl.LaneWidth,
		lanes:     cl.Lanes,
	}, nil
}

// CodeLiteral returns the [CodeLiteral] of the target [Code].
func (c Code) CodeLiteral() CodeLiteral {
	return CodeLiteral{
		Base:      c.base,
		Exponent:  c.exponent,
		LaneWidth: c.laneWidth,
		Lanes:     c.lanes,
	}
}

// Base returns the fixed-point base.
func (c Code) Base() uint64 {
	return c.base
}

// Exponent returns the fixed-point exponent of freshly encoded values.
func (c Code) Exponent() int {
	return c.exponent
}

// LaneWidth returns the width in bits of a packed lane.
func (c Code) LaneWidth() int {
	return c.laneWidth
}

// Lanes returns the requested number of lanes, zero meaning as many as
// the key allows.
func (c Code) Lanes() int {
	return c.lanes
}

// Scale returns Base^Exponent.
func (c Code) Scale() *big.Int {
	return c.ScaleAt(c.exponent)
}

// ScaleAt returns Base^exponent.
func (c Code) ScaleAt(exponent int) *big.Int {
	return bignum.PowUint(c.base, exponent)
}

// Equal returns true if both codes are identical.
func (c Code) Equal(other *Code) bool {
	return cmp.Equal(c.CodeLiteral(), other.CodeLiteral())
}

func (c Code) String() string {
	return fmt.Sprintf("Base=%d/Exp=%d/W=%d/Lanes=%d", c.base, c.exponent, c.laneWidth, c.lanes)
}

// MarshalJSON returns a JSON representation of the code. See Marshal from the [encoding/json] package.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.CodeLiteral())
}

// UnmarshalJSON reads a JSON representation of a code into the receiver. See Unmarshal from the [encoding/json] package.
func (c *Code) UnmarshalJSON(data []byte) (err error) {
	var cl CodeLiteral
	if err = json.Unmarshal(data, &cl); err != nil {
		return
	}
	*c, err = NewCode(cl)
	return
}
