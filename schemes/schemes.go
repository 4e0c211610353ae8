// Package schemes contains the implemented cryptosystems.
package schemes

// Encryptor is a scheme-agnostic probabilistic encryption interface.
type Encryptor[P, C any] interface {
	EncryptNew(pt P) (ct C, err error)
	Rerandomize(ct C) (ctOut C, err error)
}

// Decryptor is a scheme-agnostic decryption interface.
type Decryptor[P, C any] interface {
	Decrypt(ct C) (pt P, err error)
	DecryptUntrusted(ct C) (pt P, err error)
}

// Evaluator is a scheme-agnostic additively homomorphic evaluator interface.
type Evaluator[P, C any] interface {
	Add(op0, op1 C) (opOut C, err error)
	Sub(op0, op1 C) (opOut C, err error)
	Neg(op0 C) (opOut C, err error)
	Mul(op0 C, k P) (opOut C, err error)
	AddPlain(op0 C, k P) (opOut C, err error)
}
