// Package paillier implements the Paillier additively homomorphic
// public-key cryptosystem with the generator g = n+1.
//
// The package is generic over the big-integer backend: every type takes a
// type parameter I satisfying [bignum.Integer], and the application picks
// the backend by instantiating the types, for example
// NewKeyGenerator[bigint.Int](params).
//
// Keys and parameters are immutable and can be shared between goroutines.
// [Encryptor], [Evaluator] and the decryption keys are safe for concurrent
// use as long as their randomness source is.
package paillier
