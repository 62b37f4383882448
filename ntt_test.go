// ntt_test.go - NTT round-trip property test.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNTTRoundTrip checks that invntt(ntt(p)) reproduces p's coefficients
// times the Montgomery factor R modulo q, for randomly sampled
// canonical-form polynomials.
func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)

	for trial := 0; trial < 50; trial++ {
		var p poly
		var buf [2]byte
		for i := range p.coeffs {
			_, err := rand.Read(buf[:])
			require.NoError(err, "rand.Read()")
			p.coeffs[i] = int16(uint16(buf[0])|uint16(buf[1])<<8) % kyberQ
			if p.coeffs[i] < 0 {
				p.coeffs[i] += kyberQ
			}
		}

		want := p
		want.toMont()
		want.reduce()
		want.normalize()

		p.ntt()
		p.invntt()
		p.reduce()
		p.normalize()

		require.Equal(want.coeffs, p.coeffs, "invntt(ntt(p)) != p, trial %d", trial)
	}
}
