// indcpa.go - Kyber IND-CPA encryption.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"io"

	"github.com/vtdev-corp/mlwekem/keccak"
)

// packPublicKey serializes the public key as the concatenation of the
// canonically-packed polyvec pk and the public seed used to regenerate
// matrix A.
func packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[len(pk.vec)*kyberPolyBytes:], seed[:SymSize])
}

// unpackPublicKey deserializes a public key packed by packPublicKey.
func unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)

	off := len(pk.vec) * kyberPolyBytes
	copy(seed, packedPk[off:off+SymSize])
}

// packCiphertext serializes a ciphertext as the compressed polyvec b at
// depth du followed by the compressed polynomial v at depth dv.
func packCiphertext(r []byte, b *polyVec, v *poly, du, dv int) {
	b.compress(r, du)
	v.compress(r[b.compressedSize(du):], dv)
}

// unpackCiphertext deserializes a ciphertext packed by packCiphertext.
func unpackCiphertext(b *polyVec, v *poly, c []byte, du, dv int) {
	b.decompress(c, du)
	v.decompress(c[b.compressedSize(du):], dv)
}

// packSecretKey serializes the IND-CPA secret key.
func packSecretKey(r []byte, sk *polyVec) {
	sk.toBytes(r)
}

// unpackSecretKey deserializes an IND-CPA secret key packed by
// packSecretKey.
func unpackSecretKey(sk *polyVec, packedSk []byte) {
	sk.fromBytes(packedSk)
}

type indcpaPublicKey struct {
	packed []byte
	h      [32]byte
}

func (pk *indcpaPublicKey) toBytes() []byte {
	return pk.packed
}

func (pk *indcpaPublicKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaPublicKeySize {
		return ErrInvalidKeySize
	}

	pk.packed = make([]byte, len(b))
	copy(pk.packed, b)
	pk.h = keccak.Hash256(b)

	return nil
}

type indcpaSecretKey struct {
	packed []byte
}

func (sk *indcpaSecretKey) fromBytes(p *ParameterSet, b []byte) error {
	if len(b) != p.indcpaSecretKeySize {
		return ErrInvalidKeySize
	}

	sk.packed = make([]byte, len(b))
	copy(sk.packed, b)

	return nil
}

// indcpaKeyPair generates a fresh public/private key pair for the
// CPA-secure public-key encryption scheme underlying Kyber (spec.md
// §4.3.1): sample a 32-byte seed, expand it via SHA3-512 into a public
// matrix seed and a noise seed, sample the secret and error vectors from
// the centered binomial distribution, and compute t = A*s + e in the
// NTT domain.
func (p *ParameterSet) indcpaKeyPair(rng io.Reader) (*indcpaPublicKey, *indcpaSecretKey, error) {
	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}

	sk := &indcpaSecretKey{packed: make([]byte, p.indcpaSecretKeySize)}
	pk := &indcpaPublicKey{packed: make([]byte, p.indcpaPublicKeySize)}

	expanded := keccak.Hash512(d[:])
	publicSeed, noiseSeed := expanded[:SymSize], expanded[SymSize:]

	a := p.allocMatrix()
	genMatrix(a, publicSeed, false)

	var nonce byte
	skpv := p.allocPolyVec()
	for _, pv := range skpv.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	e := p.allocPolyVec()
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	skpv.ntt()
	skpv.reduce()
	e.ntt()

	// matrix-vector multiplication: t = A*s + e, in the NTT domain. Each
	// pointwiseAcc output needs an extra Montgomery correction before it
	// can be combined with e, which the NTT leaves in regular form.
	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.pointwiseAcc(&a[i], &skpv)
		pv.toMont()
	}
	pkpv.add(&pkpv, &e)
	pkpv.reduce()

	for i := range skpv.vec {
		skpv.vec[i].normalize()
		pkpv.vec[i].normalize()
	}
	packSecretKey(sk.packed, &skpv)
	packPublicKey(pk.packed, &pkpv, publicSeed)
	pk.h = keccak.Hash256(pk.packed)

	return pk, sk, nil
}

// indcpaEncrypt is the encryption function of the CPA-secure public-key
// encryption scheme underlying Kyber (spec.md §4.3.2). coins is the
// 32-byte randomness the FO transform derives deterministically from the
// message and the public key hash.
func (p *ParameterSet) indcpaEncrypt(c, m []byte, pk *indcpaPublicKey, coins []byte) {
	var k, v, epp poly
	var seed [SymSize]byte

	pkpv := p.allocPolyVec()
	unpackPublicKey(&pkpv, seed[:], pk.packed)

	k.fromMsg(m)

	at := p.allocMatrix()
	genMatrix(at, seed[:], true)

	var nonce byte
	sp := p.allocPolyVec()
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}

	ep := p.allocPolyVec()
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, kyberEta2)
		nonce++
	}

	epp.getNoise(coins, nonce, kyberEta2)

	sp.ntt()

	// matrix-vector multiplication: u = A^T*r + e1, in the NTT domain.
	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointwiseAcc(&at[i], &sp)
	}
	bp.invntt()
	bp.add(&bp, &ep)
	bp.reduce()

	// v = t^T*r + e2 + Decompress(m)
	v.pointwiseAcc(&pkpv, &sp)
	v.invntt()

	v.add(&v, &epp)
	v.add(&v, &k)
	v.reduce()

	packCiphertext(c, &bp, &v, p.du, p.dv)
}

// indcpaDecrypt is the decryption function of the CPA-secure public-key
// encryption scheme underlying Kyber (spec.md §4.3.3): m = v - s^T*u.
func (p *ParameterSet) indcpaDecrypt(m, c []byte, sk *indcpaSecretKey) {
	var v, mp poly

	skpv, bp := p.allocPolyVec(), p.allocPolyVec()
	unpackCiphertext(&bp, &v, c, p.du, p.dv)
	unpackSecretKey(&skpv, sk.packed)

	bp.ntt()

	mp.pointwiseAcc(&skpv, &bp)
	mp.invntt()

	mp.sub(&v, &mp)
	mp.reduce()

	mp.toMsg(m)
}

// allocMatrix allocates a k x k matrix of polynomials.
func (p *ParameterSet) allocMatrix() []polyVec {
	m := make([]polyVec, 0, p.k)
	for i := 0; i < p.k; i++ {
		m = append(m, p.allocPolyVec())
	}
	return m
}

// allocPolyVec allocates a length-k vector of polynomials.
func (p *ParameterSet) allocPolyVec() polyVec {
	vec := make([]*poly, 0, p.k)
	for i := 0; i < p.k; i++ {
		vec = append(vec, new(poly))
	}
	return polyVec{vec}
}
