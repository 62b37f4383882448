// ntt.go - Number-theoretic transform over Z_q[X]/(X^256+1), q=3329.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zetas lists precomputed powers of the primitive 256th root of unity
// zeta=17, in Montgomery form and bitreversed order: zetas[i] = zeta^brv(i)
// * R mod q, where brv is 7-bit bitreversal and R=2^16 mod q. Index 0 is
// unused; ntt/invntt both walk indices 1..127.
var zetas = [128]int16{
	2285, 2571, 2970, 1812, 1493, 1422, 287, 202, 3158, 622, 1577, 182,
	962, 2127, 1855, 1468, 573, 2004, 264, 383, 2500, 1458, 1727, 3199,
	2648, 1017, 732, 608, 1787, 411, 3124, 1758, 1223, 652, 2777, 1015,
	2036, 1491, 3047, 1785, 516, 3321, 3009, 2663, 1711, 2167, 126,
	1469, 2476, 3239, 3058, 830, 107, 1908, 3082, 2378, 2931, 961, 1821,
	2604, 448, 2264, 677, 2054, 2226, 430, 555, 843, 2078, 871, 1550,
	105, 422, 587, 177, 3094, 3038, 2869, 1574, 1653, 3083, 778, 1159,
	3182, 2552, 1483, 2727, 1119, 1739, 644, 2457, 349, 418, 329, 3173,
	3254, 817, 1097, 603, 610, 1322, 2044, 1864, 384, 2114, 3193, 1218,
	1994, 2455, 220, 2142, 1670, 2144, 1799, 2051, 794, 1819, 2475,
	2459, 478, 3221, 3021, 996, 991, 958, 1869, 1522, 1628,
}

// nttRef computes an in-place forward NTT of a polynomial. Input
// coefficients are assumed to be bounded by q in absolute value; output
// coefficients are bounded by 7q. Input in normal order, output
// bitreversed (spec.md §4.2.2).
func nttRef(r *[kyberN]int16) {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fqMul(zeta, r[j+length])
				r[j+length] = r[j] - t
				r[j] = r[j] + t
			}
		}
	}
}

// invnttRef computes an in-place inverse NTT of a polynomial, including
// the final multiplication by mont^2/128, so invntt(ntt(p)) is p times
// R=2^16 mod q (Montgomery form). Input bitreversed, output normal order
// (spec.md §4.2.2).
func invnttRef(r *[kyberN]int16) {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := r[j]
				r[j] = barrettReduce(t + r[j+length])
				r[j+length] -= t
				r[j+length] = fqMul(zeta, r[j+length])
			}
		}
	}

	for j := range r {
		r[j] = fqMul(r[j], invNTTFactor)
	}
}
