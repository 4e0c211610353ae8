package sampling

import (
	"crypto/rand"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system's secure randomness
// source. It is safe for concurrent use and is the default source of
// every sampler of the library.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read fills sum with secure random bytes.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically expands a key into a stream of bytes with the
// blake2b XOF. Two KeyedPRNG with the same key produce the same stream,
// which makes key generation and encryption reproducible in tests and
// benchmarks.
//
// WARNING: the stream is only as secret as the key. Reads are serialized by
// a mutex, but concurrent readers observe a non-deterministic interleaving
// of the stream.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// A nil key is treated as key=[]byte{}, which is INSECURE.
// Keys longer than 64 bytes are rejected by blake2b.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	prng := &KeyedPRNG{xof: xof, key: make([]byte, len(key))}
	copy(prng.key, key)
	return prng, nil
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the start of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}
