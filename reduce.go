// reduce.go - Montgomery, Barrett, and full reduction over Z_q, q=3329.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// qInv satisfies kyberQ*qInv ≡ 1 (mod 2^16).
	qInv = 62209

	// mont is 2^16 mod kyberQ, the Montgomery constant R mod q.
	mont = 2285

	// montR2 is R^2 mod q, used to lift a value into Montgomery form via
	// a single montgomeryReduce(a*montR2) call.
	montR2 = 1353

	// invNTTFactor is mont^2/128 mod q, the scaling factor invNTT applies
	// after its main butterfly loop (spec.md §4.2.2).
	invNTTFactor = 1441
)

// montgomeryReduce computes a value congruent to a*R^-1 mod q, where
// R=2^16, for a in (-q*2^15, q*2^15). The result lies in (-q, q).
func montgomeryReduce(a int32) int16 {
	t := int16(a * qInv)
	return int16((a - int32(t)*kyberQ) >> 16)
}

// barrettReduce computes a value congruent to a mod q, for a in
// (-2^15, 2^15). The result lies in (-(q+1)/2, (q+1)/2].
func barrettReduce(a int16) int16 {
	const v = int32((1 << 26) + kyberQ/2) / kyberQ
	t := int16((v*int32(a) + (1 << 25)) >> 26)
	t *= kyberQ
	return a - t
}

// fqMul is modular multiplication in Montgomery form: fqMul(a,b) is
// congruent to a*b*R^-1 mod q.
func fqMul(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}

// toMontgomery lifts a canonical-form coefficient into Montgomery form,
// i.e. computes a value congruent to a*R mod q.
func toMontgomery(a int16) int16 {
	return montgomeryReduce(int32(a) * montR2)
}

// freeze reduces a to its canonical representative in [0, q).
func freeze(a int16) int16 {
	r := barrettReduce(a)
	r += (r >> 15) & kyberQ // if r < 0, add q
	return r
}
