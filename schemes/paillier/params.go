package paillier

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

const (
	// MinLogN is the smallest supported modulus bit-length.
	MinLogN = 128
	// MaxLogN is the largest supported modulus bit-length.
	MaxLogN = 16384
	// DefaultPrimalityRounds is the default number of Miller-Rabin rounds
	// run on each prime candidate.
	DefaultPrimalityRounds = 20
	// DefaultMaxRetries is the default number of rejected prime pairs
	// tolerated before key generation fails.
	DefaultMaxRetries = 128
)

// ParametersLiteral is a literal representation of Paillier parameters. It has
// public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The [NewParametersFromLiteral] function is used
// to generate the actual checked parameters from the literal representation.
//
// Users must set the bit-length of the modulus n (LogN), which must be even
// so that both prime factors have LogN/2 bits. PrimalityRounds and MaxRetries
// are optional and default to [DefaultPrimalityRounds] and [DefaultMaxRetries].
type ParametersLiteral struct {
	LogN            int
	PrimalityRounds int `json:",omitempty"`
	MaxRetries      int `json:",omitempty"`
}

// Parameters represents a parameter set for the Paillier cryptosystem. Its
// fields are private and immutable. See [ParametersLiteral] for
// user-specified parameters.
type Parameters struct {
	logN            int
	primalityRounds int
	maxRetries      int
}

// NewParametersFromLiteral instantiate a set of Paillier parameters from a
// [ParametersLiteral]. It returns the empty parameters
// [Parameters]{} and a non-nil error if the specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	switch {
	case pl.LogN < MinLogN || pl.LogN > MaxLogN:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: LogN=%d is outside [%d, %d]", pl.LogN, MinLogN, MaxLogN)
	case pl.LogN&1 != 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: LogN=%d is not even", pl.LogN)
	case pl.PrimalityRounds < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: PrimalityRounds=%d is negative", pl.PrimalityRounds)
	case pl.MaxRetries < 0:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: MaxRetries=%d is negative", pl.MaxRetries)
	}

	p := Parameters{
		logN:            pl.LogN,
		primalityRounds: pl.PrimalityRounds,
		maxRetries:      pl.MaxRetries,
	}

	if p.primalityRounds == 0 {
		p.primalityRounds = DefaultPrimalityRounds
	}

	if p.maxRetries == 0 {
		p.maxRetries = DefaultMaxRetries
	}

	return p, nil
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		LogN:            p.logN,
		PrimalityRounds: p.primalityRounds,
		MaxRetries:      p.maxRetries,
	}
}

// LogN returns the bit-length of the modulus n.
func (p Parameters) LogN() int {
	return p.logN
}

// LogP returns the bit-length of each prime factor of n.
func (p Parameters) LogP() int {
	return p.logN >> 1
}

// PrimalityRounds returns the number of Miller-Rabin rounds run on each
// prime candidate.
func (p Parameters) PrimalityRounds() int {
	return p.primalityRounds
}

// MaxRetries returns the number of rejected prime pairs tolerated by the
// key generator.
func (p Parameters) MaxRetries() int {
	return p.maxRetries
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// String returns a short description of the parameters.
func (p Parameters) String() string {
	return fmt.Sprintf("LogN=%d/Rounds=%d", p.logN, p.primalityRounds)
}

// MarshalBinary returns a []byte representation of the parameter set.
// This representation corresponds to the one returned by MarshalJSON.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
