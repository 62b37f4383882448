// doc_test.go - Kyber godoc examples.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"crypto/rand"

	"github.com/vtdev-corp/mlwekem/asymmetric"
)

func Example_keyEncapsulationMechanism() {
	// Unauthenticated Key Encapsulation Mechanism (KEM)

	// Alice, step 1: Generate a key pair.
	alicePublicKey, alicePrivateKey, err := ParamsK3.GenerateKeyPair(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Alice, step 2: Send the public key to Bob (Not shown).

	// Bob, step 1: Deserialize Alice's public key from the binary encoding.
	peerPublicKey, err := ParamsK3.PublicKeyFromBytes(alicePublicKey.Bytes())
	if err != nil {
		panic(err)
	}

	// Bob, step 2: Generate the KEM cipher text and shared secret.
	cipherText, bobSharedSecret, err := peerPublicKey.KEMEncrypt(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Bob, step 3: Send the cipher text to Alice (Not shown).

	// Alice, step 3: Decrypt the KEM cipher text.
	aliceSharedSecret, ok := alicePrivateKey.KEMDecrypt(cipherText)
	if !ok {
		panic("Re-encryption check failed")
	}

	// Alice and Bob have identical values for the shared secrets.
	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("Shared secrets mismatch")
	}
}

func Example_kemCipher() {
	// The same exchange via the asymmetric.Key-based Kem wrapper, which
	// lets Alice and Bob agree on a parameter set by tag rather than by
	// importing a concrete *ParameterSet value.

	alice := NewKem(rand.Reader)
	pair, err := alice.Generate(asymmetric.ParameterK3)
	if err != nil {
		panic(err)
	}

	bob := NewKem(rand.Reader)
	if err := bob.Initialize(pair.PublicKey()); err != nil {
		panic(err)
	}
	cipherText, bobSharedSecret, err := bob.Encapsulate()
	if err != nil {
		panic(err)
	}

	if err := alice.Initialize(pair.PrivateKey()); err != nil {
		panic(err)
	}
	aliceSharedSecret, ok, err := alice.Decapsulate(cipherText)
	if err != nil {
		panic(err)
	}
	if !ok {
		panic("Re-encryption check failed")
	}

	if !bytes.Equal(aliceSharedSecret, bobSharedSecret) {
		panic("Shared secrets mismatch")
	}
}
