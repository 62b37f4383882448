// keypair.go - The AsymmetricKeyPair value type.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package asymmetric

// KeyPair owns one public and one private Key, produced together by a
// primitive's key generation step and released to the caller as a unit.
type KeyPair struct {
	public  *Key
	private *Key
}

// NewKeyPair pairs a public and a private Key.
func NewKeyPair(public, private *Key) *KeyPair {
	return &KeyPair{public: public, private: private}
}

// PublicKey returns the public half of the pair.
func (kp *KeyPair) PublicKey() *Key { return kp.public }

// PrivateKey returns the private half of the pair.
func (kp *KeyPair) PrivateKey() *Key { return kp.private }
