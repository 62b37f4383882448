// sample.go - Uniform rejection sampling of matrix A from a SHAKE-128 XOF.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "github.com/vtdev-corp/mlwekem/keccak"

const shake128Rate = 168

// rejUniform fills as many of p's coefficients as possible from buf,
// interpreting it as a stream of 12-bit little-endian values and
// discarding any that land outside [0, q). Returns the number of
// coefficients written.
func rejUniform(p *poly, offset int, buf []byte) int {
	ctr, pos := offset, 0
	for ctr < kyberN && pos+3 <= len(buf) {
		val0 := (uint16(buf[pos]) | (uint16(buf[pos+1]) << 8)) & 0xfff
		val1 := (uint16(buf[pos+1])>>4 | (uint16(buf[pos+2]) << 4)) & 0xfff
		pos += 3

		if val0 < kyberQ {
			p.coeffs[ctr] = int16(val0)
			ctr++
		}
		if ctr < kyberN && val1 < kyberQ {
			p.coeffs[ctr] = int16(val1)
			ctr++
		}
	}
	return ctr
}

// genMatrix deterministically generates matrix A (or its transpose) from
// a public seed. Each entry is a polynomial whose coefficients look
// uniformly random, produced by rejection sampling against a SHAKE-128
// stream keyed on the seed and the entry's (row, column) coordinates
// (spec.md §4.2.3). Encapsulation generates the transpose; key
// generation does not, since A is only ever used once per direction.
func genMatrix(a []polyVec, seed []byte, transposed bool) {
	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)

	var buf [shake128Rate * 4]byte

	for i, v := range a {
		for j, p := range v.vec {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof := keccak.NewShake128()
			xof.Absorb(extSeed[:])
			xof.Squeeze(buf[:])

			ctr := rejUniform(p, 0, buf[:])
			for ctr < kyberN {
				var more [shake128Rate]byte
				xof.Squeeze(more[:])
				ctr = rejUniform(p, ctr, more[:])
			}
		}
	}
}
