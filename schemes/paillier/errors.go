package paillier

import "errors"

var (
	// ErrPlaintextOutOfRange is returned when a plaintext is not in [0, n).
	ErrPlaintextOutOfRange = errors.New("plaintext is out of range")
	// ErrCiphertextOutOfRange is returned when a ciphertext is not in [0, n^2).
	ErrCiphertextOutOfRange = errors.New("ciphertext is out of range")
	// ErrKeyMismatch is returned when operands are tagged with different keys.
	ErrKeyMismatch = errors.New("operands were produced under different keys")
	// ErrMalformedCiphertext is returned when a ciphertext is not a valid
	// encryption under the key.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrOperandCount is returned when an operation receives no operand or
	// operand lists of different lengths.
	ErrOperandCount = errors.New("invalid number of operands")
	// ErrInvalidNonce is returned when an encryption nonce is not a unit
	// of [1, n).
	ErrInvalidNonce = errors.New("invalid nonce")
	// ErrInvalidModulus is returned when a public modulus is zero, even or
	// too small.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrInvalidKeypair is returned when a pair of primes does not form a
	// valid keypair.
	ErrInvalidKeypair = errors.New("invalid keypair")
	// ErrKeyGeneration is returned when no valid keypair was found within
	// the retry budget.
	ErrKeyGeneration = errors.New("key generation failed")
	// ErrRandomness is returned when the randomness source fails.
	ErrRandomness = errors.New("randomness source failure")
)
