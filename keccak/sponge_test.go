// sponge_test.go - keccak sponge wrapper tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package keccak

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash256Deterministic(t *testing.T) {
	require := require.New(t)

	a := Hash256([]byte("lattice"))
	b := Hash256([]byte("lattice"))
	require.Equal(a, b, "Hash256 must be deterministic")

	c := Hash256([]byte("Lattice"))
	require.NotEqual(a, c, "Hash256 of different input must differ")
}

func TestHash512Deterministic(t *testing.T) {
	require := require.New(t)

	a := Hash512([]byte("lattice"))
	b := Hash512([]byte("lattice"))
	require.Equal(a, b, "Hash512 must be deterministic")
}

func TestShakeAbsorbSqueeze(t *testing.T) {
	require := require.New(t)

	x := NewShake128()
	_, err := x.Absorb([]byte("kyber"))
	require.NoError(err, "Absorb()")

	out1 := make([]byte, 64)
	_, err = x.Squeeze(out1)
	require.NoError(err, "Squeeze()")

	x.Reset()
	_, err = x.Absorb([]byte("kyber"))
	require.NoError(err, "Absorb() after Reset()")
	out2 := make([]byte, 64)
	_, err = x.Squeeze(out2)
	require.NoError(err, "Squeeze() after Reset()")

	require.Equal(out1, out2, "squeeze output must be reproducible across Reset()")
}

func TestCShake256DomainSeparation(t *testing.T) {
	require := require.New(t)

	a := NewCShake256(nil, []byte("domain-a"))
	a.Absorb([]byte("shared secret"))
	outA := make([]byte, 32)
	a.Squeeze(outA)

	b := NewCShake256(nil, []byte("domain-b"))
	b.Absorb([]byte("shared secret"))
	outB := make([]byte, 32)
	b.Squeeze(outB)

	require.False(bytes.Equal(outA, outB), "different customization strings must yield different output")
}

func TestSqueeze256And128(t *testing.T) {
	require := require.New(t)

	out256 := make([]byte, 32)
	Squeeze256(out256, []byte("a"), []byte("b"))

	out128 := make([]byte, 32)
	Squeeze128(out128, []byte("a"), []byte("b"))

	require.False(bytes.Equal(out256, out128), "SHAKE-128 and SHAKE-256 must not collide on the same input")
}
