// drbg_test.go - CounterDRBG tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package prng

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func seed48() []byte {
	s := make([]byte, SeedSize)
	for i := range s {
		s[i] = byte(i)
	}
	return s
}

func TestCounterDRBGDeterministic(t *testing.T) {
	require := require.New(t)

	d1, err := NewCounterDRBG(seed48())
	require.NoError(err, "NewCounterDRBG()")
	d2, err := NewCounterDRBG(seed48())
	require.NoError(err, "NewCounterDRBG()")

	out1 := make([]byte, 256)
	out2 := make([]byte, 256)

	_, err = d1.Read(out1)
	require.NoError(err, "Read()")
	_, err = d2.Read(out2)
	require.NoError(err, "Read()")

	require.Equal(out1, out2, "identical seeds must produce identical keystreams")
}

func TestCounterDRBGAdvances(t *testing.T) {
	require := require.New(t)

	d, err := NewCounterDRBG(seed48())
	require.NoError(err, "NewCounterDRBG()")

	first := make([]byte, 64)
	second := make([]byte, 64)

	_, err = d.Read(first)
	require.NoError(err, "Read()")
	_, err = d.Read(second)
	require.NoError(err, "Read()")

	require.False(bytes.Equal(first, second), "successive Read() calls must not repeat output")
}

func TestCounterDRBGRejectsBadSeedSize(t *testing.T) {
	require := require.New(t)

	_, err := NewCounterDRBG(make([]byte, SeedSize-1))
	require.ErrorIs(err, ErrInvalidSeedSize)
}

func TestSystemReturnsReader(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 32)
	n, err := System().Read(buf)
	require.NoError(err, "System().Read()")
	require.Equal(32, n)
}
