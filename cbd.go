// cbd.go - Centered binomial distribution sampling.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// load32LittleEndian reads 4 bytes of x as an unsigned little-endian
// integer.
func load32LittleEndian(x []byte) uint32 {
	return uint32(x[0]) | uint32(x[1])<<8 | uint32(x[2])<<16 | uint32(x[3])<<24
}

// cbd samples p from the centered binomial distribution with parameter
// eta, given eta*kyberN/4 bytes of uniformly random input (spec.md
// §4.2.3). eta is always 2 or 3 for every parameter set in this module.
func (p *poly) cbd(buf []byte, eta int) {
	switch eta {
	case 2:
		p.cbdEta2(buf)
	case 3:
		p.cbdEta3(buf)
	default:
		panic("kyber: eta must be 2 or 3")
	}
}

// cbdEta2 consumes 2*kyberN/4 bytes of buf; each resulting coefficient is
// the difference of two independent sums of 2 uniform bits, in [-2, 2].
func (p *poly) cbdEta2(buf []byte) {
	for i := 0; i < kyberN/8; i++ {
		t := load32LittleEndian(buf[4*i:])

		d := t & 0x55555555
		d += (t >> 1) & 0x55555555

		for j := 0; j < 8; j++ {
			a := int16((d >> uint(4*j+0)) & 0x3)
			b := int16((d >> uint(4*j+2)) & 0x3)
			p.coeffs[8*i+j] = a - b
		}
	}
}

// cbdEta3 consumes 3*kyberN/4 bytes of buf; each resulting coefficient is
// the difference of two independent sums of 3 uniform bits, in [-3, 3].
// The final iteration's 4-byte load reaches one byte past the 3-byte
// group it needs, so buf is copied into a padded scratch buffer first.
func (p *poly) cbdEta3(buf []byte) {
	padded := make([]byte, 3*kyberN/4+1)
	copy(padded, buf)
	buf = padded

	for i := 0; i < kyberN/4; i++ {
		t := load32LittleEndian(buf[3*i:]) & 0x00ffffff

		d := t & 0x00249249
		d += (t >> 1) & 0x00249249
		d += (t >> 2) & 0x00249249

		for j := 0; j < 4; j++ {
			a := int16((d >> uint(6*j+0)) & 0x7)
			b := int16((d >> uint(6*j+3)) & 0x7)
			p.coeffs[4*i+j] = a - b
		}
	}
}
