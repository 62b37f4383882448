// key_test.go - Key and KeyPair tests.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package asymmetric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyMarshalRoundTrip(t *testing.T) {
	require := require.New(t)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	k := NewKey(PrimitiveKyber, ClassPublic, ParameterK3, data)

	b, err := k.MarshalBinary()
	require.NoError(err, "MarshalBinary()")
	require.Len(b, headerSize+len(data))

	var k2 Key
	require.NoError(k2.UnmarshalBinary(b), "UnmarshalBinary()")
	require.Equal(k.Primitive(), k2.Primitive())
	require.Equal(k.Class(), k2.Class())
	require.Equal(k.Parameter(), k2.Parameter())
	require.Equal(k.Bytes(), k2.Bytes())
}

func TestKeyUnmarshalRejectsShortBuffer(t *testing.T) {
	require := require.New(t)

	var k Key
	require.ErrorIs(k.UnmarshalBinary([]byte{1, 2}), ErrShortBuffer)
}

func TestKeyUnmarshalRejectsUnknownEnums(t *testing.T) {
	require := require.New(t)

	var k Key
	require.ErrorIs(k.UnmarshalBinary([]byte{99, byte(ClassPublic), 0, 0}), ErrInvalidPrimitive)

	require.ErrorIs(k.UnmarshalBinary([]byte{byte(PrimitiveKyber), 99, 0, 0}), ErrInvalidClass)

	require.ErrorIs(k.UnmarshalBinary([]byte{byte(PrimitiveKyber), byte(ClassPublic), 0xff, 0xff}), ErrInvalidParameter)
}

func TestKeyPair(t *testing.T) {
	require := require.New(t)

	pub := NewKey(PrimitiveKyber, ClassPublic, ParameterK2, []byte{1})
	priv := NewKey(PrimitiveKyber, ClassPrivate, ParameterK2, []byte{2})

	kp := NewKeyPair(pub, priv)
	require.Same(pub, kp.PublicKey())
	require.Same(priv, kp.PrivateKey())
}
