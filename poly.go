// poly.go - Kyber polynomial.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "github.com/vtdev-corp/mlwekem/keccak"

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
type poly struct {
	coeffs [kyberN]int16
}

// reduce applies Barrett reduction to every coefficient, bringing each
// into (-(q+1)/2, (q+1)/2].
func (p *poly) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// normalize brings every coefficient to its canonical representative in
// [0, q), the form toBytes requires.
func (p *poly) normalize() {
	for i := range p.coeffs {
		p.coeffs[i] = freeze(p.coeffs[i])
	}
}

// toBytes serializes a polynomial whose coefficients are in [0, q) using
// the canonical 12-bits-per-coefficient little-endian packing (two
// coefficients per three bytes).
func (p *poly) toBytes(r []byte) {
	for i := 0; i < kyberN/2; i++ {
		t0 := uint16(p.coeffs[2*i])
		t1 := uint16(p.coeffs[2*i+1])

		r[3*i+0] = byte(t0)
		r[3*i+1] = byte(t0>>8) | byte(t1<<4)
		r[3*i+2] = byte(t1 >> 4)
	}
}

// fromBytes deserializes a polynomial packed by toBytes; the inverse of
// toBytes.
func (p *poly) fromBytes(a []byte) {
	for i := 0; i < kyberN/2; i++ {
		p.coeffs[2*i] = int16(uint16(a[3*i+0]) | (uint16(a[3*i+1]&0x0f) << 8))
		p.coeffs[2*i+1] = int16((uint16(a[3*i+1]) >> 4) | (uint16(a[3*i+2]) << 4))
	}
}

// fromMsg converts a 32-byte message to a polynomial: bit j of byte i
// becomes coefficient 8*i+j, 0 ↦ 0 and 1 ↦ ⌈q/2⌉, via a constant-time
// bitmask (spec.md §5: poly_from_msg must be constant-time).
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			mask := -int16((v >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & ((kyberQ + 1) / 2)
		}
	}
}

// toMsg converts a polynomial back to a 32-byte message: coefficient
// 8*i+j is rounded to the nearest multiple of ⌈q/2⌉ and that becomes bit
// j of byte i, via a constant-time coefficient-level threshold
// (spec.md §5: poly_to_msg must be constant-time).
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := uint32(freeze(p.coeffs[8*i+j]))
			t = ((t << 1) + kyberQ/2) / kyberQ
			t &= 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// getNoise samples a polynomial from the centered binomial distribution
// with parameter eta, deterministically from seed and nonce
// (spec.md §4.2.3).
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, seed...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, eta*kyberN/4)
	keccak.Squeeze256(buf, extSeed)

	p.cbd(buf, eta)
}

// ntt computes the negacyclic number-theoretic transform of a polynomial
// in place; input assumed in normal order, output in bitreversed order.
func (p *poly) ntt() {
	nttFn(&p.coeffs)
}

// invntt computes the inverse NTT of a polynomial in place; input
// assumed in bitreversed order, output in normal order.
func (p *poly) invntt() {
	invnttFn(&p.coeffs)
}

// toMont lifts every coefficient of p into Montgomery form in place.
func (p *poly) toMont() {
	for i := range p.coeffs {
		p.coeffs[i] = toMontgomery(p.coeffs[i])
	}
}

// add computes p = a + b coefficient-wise. The result is not reduced;
// callers chain a bounded number of add/sub calls before a reduce().
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub computes p = a - b coefficient-wise. The result is not reduced;
// callers chain a bounded number of add/sub calls before a reduce().
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}
