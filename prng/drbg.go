// drbg.go - Deterministic AES-256-CTR DRBG for KAT reproduction.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package prng

import (
	"crypto/aes"
	"errors"
)

// SeedSize is the size in bytes of the seed the counter DRBG is
// initialized with (spec.md §4.5: "seed = 48 bytes").
const SeedSize = 48

// ErrInvalidSeedSize is returned by NewCounterDRBG when the seed is not
// SeedSize bytes long.
var ErrInvalidSeedSize = errors.New("prng: seed must be 48 bytes")

// CounterDRBG is the fixed AES-256-CTR DRBG used by the NIST PQC KAT
// generators: Key and V start at zero, and Update(providedData) encrypts
// three successive counter blocks under the current key (48 bytes of
// keystream), XORs providedData into the result, and installs it as the
// new (Key, V).
//
// crypto/aes is standard library here because no
// third-party AES implementation appears anywhere in the retrieval pack;
// this DRBG needs the raw AES-256 block permutation as a PRF, not a
// cipher.Stream wrapping it, so there is no higher-level library to
// delegate to.
type CounterDRBG struct {
	key [32]byte
	v   [16]byte
}

// NewCounterDRBG constructs a CounterDRBG seeded deterministically from a
// 48-byte seed, matching the reference NIST_KAT DRBG used to reproduce
// the Kyber round-3 KAT vectors.
func NewCounterDRBG(seed []byte) (*CounterDRBG, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidSeedSize
	}

	d := &CounterDRBG{}
	d.update(seed)
	return d, nil
}

// Read fills p with DRBG output, advancing the internal state. It never
// returns an error and always fills p completely, satisfying io.Reader.
func (d *CounterDRBG) Read(p []byte) (int, error) {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		// d.key is always exactly 32 bytes; aes.NewCipher cannot fail.
		panic(err)
	}

	n := len(p)
	for len(p) > 0 {
		d.incrementV()

		var out [16]byte
		block.Encrypt(out[:], d.v[:])

		c := copy(p, out[:])
		p = p[c:]
	}

	d.update(nil)
	return n, nil
}

// incrementV treats V as a 128-bit big-endian counter and adds one.
func (d *CounterDRBG) incrementV() {
	for i := 15; i >= 0; i-- {
		d.v[i]++
		if d.v[i] != 0 {
			break
		}
	}
}

// update implements the CTR_DRBG Update primitive used by the reference
// generator: three AES blocks of keystream are produced from the current
// (Key, V), providedData (if any) is XORed in, and the 48-byte result
// becomes the new (Key, V).
func (d *CounterDRBG) update(providedData []byte) {
	block, err := aes.NewCipher(d.key[:])
	if err != nil {
		panic(err)
	}

	var temp [48]byte
	for i := 0; i < 3; i++ {
		d.incrementV()
		block.Encrypt(temp[i*16:(i+1)*16], d.v[:])
	}

	for i := range providedData {
		if i >= len(temp) {
			break
		}
		temp[i] ^= providedData[i]
	}

	copy(d.key[:], temp[:32])
	copy(d.v[:], temp[32:48])
}
