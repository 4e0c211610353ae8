// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandIntBelow samples uniformly in [0, max) from r.
func RandIntBelow(r io.Reader, max *big.Int) (n *big.Int, err error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("cannot RandIntBelow: max must be positive but is %v", max)
	}
	if n, err = rand.Int(r, max); err != nil {
		return nil, fmt.Errorf("cannot RandIntBelow: %w", err)
	}
	return
}

// RandIntRange samples uniformly in [lower, upper) from r.
func RandIntRange(r io.Reader, lower, upper *big.Int) (n *big.Int, err error) {
	if lower.Cmp(upper) >= 0 {
		return nil, fmt.Errorf("cannot RandIntRange: empty range [%v, %v)", lower, upper)
	}
	width := new(big.Int).Sub(upper, lower)
	if n, err = RandIntBelow(r, width); err != nil {
		return nil, err
	}
	return n.Add(n, lower), nil
}

// RandIntBits samples uniformly in [0, 2^bits) from r.
func RandIntBits(r io.Reader, bits int) (n *big.Int, err error) {
	if bits < 0 {
		return nil, fmt.Errorf("cannot RandIntBits: negative bit-length %d", bits)
	}

	buf := make([]byte, (bits+7)>>3)
	if _, err = io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("cannot RandIntBits: %w", err)
	}

	// clears the excess bits of the most significant byte
	if excess := len(buf)<<3 - bits; excess > 0 {
		buf[0] &= 0xff >> excess
	}

	return new(big.Int).SetBytes(buf), nil
}
