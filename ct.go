// ct.go - Constant-time comparison and selection helpers.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// verify compares a and b for equality in time independent of their
// contents, returning 1 if they are equal and 0 otherwise. Both slices
// must have the same length; used by decapsulation's ciphertext
// re-encryption check (spec.md §4.2.5).
func verify(a, b []byte) byte {
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	// diff is 0 iff a == b. Map 0 -> 1, nonzero -> 0 without branching
	// on diff's value.
	diff |= -diff
	return byte((int32(int8(diff)) >> 31) + 1)
}

// cmov copies src into dst, overwriting its current contents, iff b == 1.
// b must be 0 or 1. Runs in time independent of b (spec.md §4.2.5), used
// to select the real or the implicit-rejection shared secret without a
// data-dependent branch.
func cmov(dst, src []byte, b byte) {
	mask := -b
	for i := range dst {
		dst[i] ^= mask & (dst[i] ^ src[i])
	}
}
