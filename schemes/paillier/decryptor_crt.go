package paillier

import (
	"fmt"

	"github.com/tuneinsight/paillier/utils/bignum"
)

// CRTDecryptionKey decrypts modulo p^2 and q^2 with the half-size
// exponents p-1 and q-1, and recombines the two residues with Garner's
// formula. It is about four times faster than [StandardDecryptionKey] but
// stores the factorization of n.
type CRTDecryptionKey[I bignum.Integer[I]] struct {
	ek *EncryptionKey[I]

	p, q     I
	pp, qq   I
	pm1, qm1 I

	// hp = L_p(g^(p-1) mod p^2)^-1 mod p
	hp I
	// hq = L_q(g^(q-1) mod q^2)^-1 mod q
	hq I
	// qInv = q^-1 mod p
	qInv I
}

// NewCRTDecryptionKey derives the [CRTDecryptionKey] of kp.
func NewCRTDecryptionKey[I bignum.Integer[I]](kp *Keypair[I]) *CRTDecryptionKey[I] {

	one := bignum.One[I]()
	ek := kp.EncryptionKey()
	g := ek.n.Add(one)

	dk := &CRTDecryptionKey[I]{
		ek:  ek,
		p:   kp.p,
		q:   kp.q,
		pp:  kp.p.Mul(kp.p),
		qq:  kp.q.Mul(kp.q),
		pm1: kp.p.Sub(one),
		qm1: kp.q.Sub(one),
	}

	dk.hp = hfunc(g, dk.p, dk.pp, dk.pm1)
	dk.hq = hfunc(g, dk.q, dk.qq, dk.qm1)

	var ok bool
	if dk.qInv, ok = dk.q.ModInverse(dk.p); !ok {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewCRTDecryptionKey: q is not invertible modulo p"))
	}

	return dk
}

// hfunc returns L_p(g^(p-1) mod p^2)^-1 mod p.
func hfunc[I bignum.Integer[I]](g, p, pp, pm1 I) I {
	h, ok := lfunc(g.ModPow(pm1, pp), p).ModInverse(p)
	if !ok {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("cannot NewCRTDecryptionKey: L(g^(p-1)) is not invertible modulo p"))
	}
	return h
}

// EncryptionKey returns the public key matching the decryption key.
func (dk CRTDecryptionKey[I]) EncryptionKey() *EncryptionKey[I] {
	return dk.ek
}

// P returns the first prime factor of n.
func (dk CRTDecryptionKey[I]) P() I {
	return dk.p
}

// Q returns the second prime factor of n.
func (dk CRTDecryptionKey[I]) Q() I {
	return dk.q
}

// StandardDecryptionKey returns the [StandardDecryptionKey] of the same
// key material.
func (dk CRTDecryptionKey[I]) StandardDecryptionKey() *StandardDecryptionKey[I] {
	return NewStandardDecryptionKey(&Keypair[I]{p: dk.p, q: dk.q, n: dk.ek.n})
}

func (dk CRTDecryptionKey[I]) String() string {
	return fmt.Sprintf("CRTDecryptionKey{%s}", dk.ek)
}

// Decrypt decrypts ct modulo p and q and recombines
// m = m_q + q * ((m_p - m_q) * q^-1 mod p).
func (dk CRTDecryptionKey[I]) Decrypt(ct *Ciphertext[I]) (pt *Plaintext[I], err error) {

	if err = dk.ek.checkCiphertext(ct); err != nil {
		return nil, fmt.Errorf("cannot Decrypt: %w", err)
	}

	up := ct.Value.Mod(dk.pp).ModPow(dk.pm1, dk.pp)
	uq := ct.Value.Mod(dk.qq).ModPow(dk.qm1, dk.qq)

	if up.IsZero() || uq.IsZero() {
		return nil, fmt.Errorf("cannot Decrypt: %w: c is not a unit modulo n", ErrMalformedCiphertext)
	}

	mp := lfunc(up, dk.p).Mul(dk.hp).Mod(dk.p)
	mq := lfunc(uq, dk.q).Mul(dk.hq).Mod(dk.q)

	return NewPlaintext(dk.recombine(mp, mq)), nil
}

// DecryptUntrusted decrypts ct after checking that gcd(c, n) = 1 and that
// both c^(p-1) = 1 mod p and c^(q-1) = 1 mod q.
func (dk CRTDecryptionKey[I]) DecryptUntrusted(ct *Ciphertext[I]) (pt *Plaintext[I], err error) {

	if err = dk.ek.checkCiphertext(ct); err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	if err = dk.ek.checkUnit(ct); err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	lp, err := lfuncChecked(ct.Value.Mod(dk.pp).ModPow(dk.pm1, dk.pp), dk.p)
	if err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	lq, err := lfuncChecked(ct.Value.Mod(dk.qq).ModPow(dk.qm1, dk.qq), dk.q)
	if err != nil {
		return nil, fmt.Errorf("cannot DecryptUntrusted: %w", err)
	}

	mp := lp.Mul(dk.hp).Mod(dk.p)
	mq := lq.Mul(dk.hq).Mod(dk.q)

	return NewPlaintext(dk.recombine(mp, mq)), nil
}

// recombine returns the unique m in [0, n) with m = mp mod p and m = mq mod q.
func (dk CRTDecryptionKey[I]) recombine(mp, mq I) I {
	t := bignum.ModSub(mp, mq, dk.p).Mul(dk.qInv).Mod(dk.p)
	return mq.Add(dk.q.Mul(t))
}
