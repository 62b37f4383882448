// cipher_test.go - Kem wrapper tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtdev-corp/mlwekem/asymmetric"
)

func TestKemRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, paramID := range []asymmetric.Parameter{
		asymmetric.ParameterK2, asymmetric.ParameterK3,
		asymmetric.ParameterK4, asymmetric.ParameterK5,
	} {
		alice := NewKem(rand.Reader)
		pair, err := alice.Generate(paramID)
		require.NoError(err, "Generate()")

		bob := NewKem(rand.Reader)
		require.NoError(bob.Initialize(pair.PublicKey()), "bob.Initialize()")

		cipherText, bobSS, err := bob.Encapsulate()
		require.NoError(err, "Encapsulate()")

		require.NoError(alice.Initialize(pair.PrivateKey()), "alice.Initialize()")
		aliceSS, ok, err := alice.Decapsulate(cipherText)
		require.NoError(err, "Decapsulate()")
		require.True(ok, "Decapsulate(): re-encryption check")

		require.Equal(aliceSS, bobSS, "shared secrets must match")
	}
}

func TestKemNotInitialized(t *testing.T) {
	require := require.New(t)

	k := NewKem(rand.Reader)
	_, _, err := k.Encapsulate()
	require.ErrorIs(err, ErrNotInitialized)

	_, _, err = k.Decapsulate(make([]byte, 10))
	require.ErrorIs(err, ErrNotInitialized)
}

func TestKemDomainKeySeparation(t *testing.T) {
	require := require.New(t)

	alice := NewKem(rand.Reader)
	pair, err := alice.Generate(asymmetric.ParameterK3)
	require.NoError(err, "Generate()")

	bobA := NewKem(rand.Reader)
	require.NoError(bobA.Initialize(pair.PublicKey()))
	bobA.SetDomainKey([]byte("protocol-a"))
	ctA, ssA, err := bobA.Encapsulate()
	require.NoError(err, "Encapsulate()")

	aliceA := NewKem(rand.Reader)
	require.NoError(aliceA.Initialize(pair.PrivateKey()))
	aliceA.SetDomainKey([]byte("protocol-a"))
	got, ok, err := aliceA.Decapsulate(ctA)
	require.NoError(err, "Decapsulate()")
	require.True(ok, "Decapsulate(): re-encryption check")
	require.Equal(ssA, got, "same domain key must agree")

	aliceB := NewKem(rand.Reader)
	require.NoError(aliceB.Initialize(pair.PrivateKey()))
	aliceB.SetDomainKey([]byte("protocol-b"))
	gotB, ok, err := aliceB.Decapsulate(ctA)
	require.NoError(err, "Decapsulate()")
	require.True(ok, "Decapsulate(): re-encryption check")
	require.False(bytes.Equal(ssA, gotB), "different domain keys must diverge")
}

func TestKemGenerateRejectsUnknownParameter(t *testing.T) {
	require := require.New(t)

	k := NewKem(rand.Reader)
	_, err := k.Generate(asymmetric.Parameter(0xbeef))
	require.ErrorIs(err, ErrInvalidParameter)
}
