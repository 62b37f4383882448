// polyvec.go - Vector of Kyber polynomials.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// polyVec is a length-k vector of polynomials, k being the module rank
// of the active ParameterSet.
type polyVec struct {
	vec []*poly
}

// compress serializes v, compressing each coefficient to d bits
// (spec.md §4.2.4; d is du for the u-component of a ciphertext).
func (v *polyVec) compress(r []byte, d int) {
	step := kyberN * d / 8
	for i, p := range v.vec {
		p.compress(r[i*step:], d)
	}
}

// decompress deserializes a polyVec packed by compress; the inverse of
// compress.
func (v *polyVec) decompress(a []byte, d int) {
	step := kyberN * d / 8
	for i, p := range v.vec {
		p.decompress(a[i*step:], d)
	}
}

// toBytes serializes v using poly.toBytes's canonical 12-bit packing.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*kyberPolyBytes:])
	}
}

// fromBytes deserializes a polyVec packed by toBytes; the inverse of
// toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*kyberPolyBytes:])
	}
}

// ntt applies the forward NTT to every element of v.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invntt applies the inverse NTT to every element of v.
func (v *polyVec) invntt() {
	for _, p := range v.vec {
		p.invntt()
	}
}

// add computes v = a + b element-wise.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// reduce applies Barrett reduction to every coefficient of every element.
func (v *polyVec) reduce() {
	for _, p := range v.vec {
		p.reduce()
	}
}

// compressedSize returns the size in bytes of v serialized with
// compress at depth d.
func (v *polyVec) compressedSize(d int) int {
	return len(v.vec) * kyberN * d / 8
}

// basemul multiplies the two degree-1 polynomials a[0]+a[1]X and
// b[0]+b[1]X modulo X^2-zeta, storing the degree-1 result in r. X^256+1
// splits into 128 such quadratics rather than 256 linear factors, so
// NTT-domain polynomial multiplication works block-by-block like this
// instead of coefficient-by-coefficient (spec.md §4.2.2).
func basemul(r, a, b []int16, zeta int16) {
	r[0] = fqMul(fqMul(a[1], b[1]), zeta)
	r[0] += fqMul(a[0], b[0])
	r[1] = fqMul(a[0], b[1])
	r[1] += fqMul(a[1], b[0])
}

// basemulMontgomery computes r = a*b in the NTT domain, working through
// the 128 quadratic blocks X^256+1 factors into, two per iteration.
func (r *poly) basemulMontgomery(a, b *poly) {
	for i := 0; i < kyberN/4; i++ {
		zeta := zetas[64+i]
		basemul(r.coeffs[4*i:], a.coeffs[4*i:], b.coeffs[4*i:], zeta)
		basemul(r.coeffs[4*i+2:], a.coeffs[4*i+2:], b.coeffs[4*i+2:], -zeta)
	}
}

// pointwiseAcc computes p = sum_i(a[i] * b[i]), an NTT-domain
// multiply-accumulate over the full module rank of a and b.
func (p *poly) pointwiseAcc(a, b *polyVec) {
	var t poly
	p.basemulMontgomery(a.vec[0], b.vec[0])
	for i := 1; i < len(a.vec); i++ {
		t.basemulMontgomery(a.vec[i], b.vec[i])
		p.add(p, &t)
	}
}
