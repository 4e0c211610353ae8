package paillier

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuneinsight/paillier/utils/bignum"
	"github.com/tuneinsight/paillier/utils/logging"
	"github.com/tuneinsight/paillier/utils/primes"
	"github.com/tuneinsight/paillier/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create
// new keys.
type KeyGenerator[I bignum.Integer[I]] struct {
	params Parameters
	prng   sampling.PRNG
	logger logging.Logger
}

// NewKeyGenerator creates a new [KeyGenerator], from which the keys of the
// scheme can be generated. The returned generator reads from a
// [sampling.ThreadSafePRNG] and does not log.
func NewKeyGenerator[I bignum.Integer[I]](params Parameters) *KeyGenerator[I] {

	prng, err := sampling.NewPRNG()
	if err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	return &KeyGenerator[I]{
		params: params,
		prng:   prng,
		logger: logging.Discard(),
	}
}

// WithPRNG returns a shallow copy of the receiver reading from prng.
func (kgen KeyGenerator[I]) WithPRNG(prng sampling.PRNG) *KeyGenerator[I] {
	kgen.prng = prng
	return &kgen
}

// WithLogger returns a shallow copy of the receiver logging to logger.
func (kgen KeyGenerator[I]) WithLogger(logger logging.Logger) *KeyGenerator[I] {
	if logger == nil {
		logger = logging.Discard()
	}
	kgen.logger = logger
	return &kgen
}

// Parameters returns the parameters of the generator.
func (kgen KeyGenerator[I]) Parameters() Parameters {
	return kgen.params
}

// GenKeypair samples two distinct primes p and q of LogN/2 bits such that
// gcd(n, (p-1)(q-1)) = 1.
//
// Rejected pairs are resampled. The method returns an error wrapping
// [ErrKeyGeneration] after MaxRetries rejected pairs, and an error wrapping
// [ErrRandomness] as soon as the randomness source fails.
func (kgen KeyGenerator[I]) GenKeypair() (kp *Keypair[I], err error) {

	ctx := context.Background()
	logP := kgen.params.LogP()
	rounds := kgen.params.PrimalityRounds()

	for attempt := 1; attempt <= kgen.params.MaxRetries(); attempt++ {

		var p, q I

		if p, err = kgen.genPrime(logP, rounds); err != nil {
			return nil, fmt.Errorf("cannot GenKeypair: %w", err)
		}

		if q, err = kgen.genPrime(logP, rounds); err != nil {
			return nil, fmt.Errorf("cannot GenKeypair: %w", err)
		}

		if kp, err = newKeypair(p, q); err != nil {
			kgen.logger.Debug(ctx, "rejected prime pair",
				"attempt", attempt,
				"reason", err,
				logging.Redacted("p"),
				logging.Redacted("q"))
			continue
		}

		kgen.logger.Info(ctx, "generated keypair", "LogN", kp.LogN(), "attempts", attempt)

		return kp, nil
	}

	return nil, fmt.Errorf("cannot GenKeypair: %w: %d prime pairs rejected", ErrKeyGeneration, kgen.params.MaxRetries())
}

func (kgen KeyGenerator[I]) genPrime(bits, rounds int) (p I, err error) {
	if p, err = primes.Generate[I](kgen.prng, bits, rounds, 0); err != nil {
		if errors.Is(err, primes.ErrExhausted) {
			return p, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
		}
		return p, fmt.Errorf("%w: %w", ErrRandomness, err)
	}
	return
}

// GenKeys generates a new keypair and returns its public key and its CRT
// decryption key.
func (kgen KeyGenerator[I]) GenKeys() (ek *EncryptionKey[I], dk *CRTDecryptionKey[I], err error) {
	kp, err := kgen.GenKeypair()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot GenKeys: %w", err)
	}
	return kp.EncryptionKey(), NewCRTDecryptionKey(kp), nil
}
