// kem.go - Kyber key encapsulation mechanism.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"bytes"
	"errors"
	"io"

	"github.com/vtdev-corp/mlwekem/keccak"
)

var (
	// ErrInvalidKeySize is the error returned when a byte serialized key is
	// an invalid size.
	ErrInvalidKeySize = errors.New("kyber: invalid key size")

	// ErrInvalidCipherTextSize is the error returned when a byte serialized
	// ciphertext is an invalid size.
	ErrInvalidCipherTextSize = errors.New("kyber: invalid ciphertext size")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("kyber: invalid private key")
)

// PrivateKey is a Kyber private key: the IND-CPA secret key s, the
// matching public key (needed by decapsulation's re-encryption check),
// and z, the implicit-rejection seed the FO transform mixes in when
// decapsulation's ciphertext check fails.
type PrivateKey struct {
	PublicKey
	sk *indcpaSecretKey
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: s ‖ pk ‖ H(pk) ‖ z.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.secretKeySize)
	b = append(b, sk.sk.packed...)
	b = append(b, sk.PublicKey.pk.packed...)
	b = append(b, sk.PublicKey.pk.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey, verifying
// the embedded public-key hash matches the embedded public key.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.secretKeySize {
		return nil, ErrInvalidKeySize
	}

	sk := new(PrivateKey)
	sk.sk = new(indcpaSecretKey)
	sk.z = make([]byte, SymSize)
	sk.PublicKey.pk = new(indcpaPublicKey)
	sk.PublicKey.p = p

	off := p.indcpaSecretKeySize
	if err := sk.PublicKey.pk.fromBytes(p, b[off:off+p.publicKeySize]); err != nil {
		return nil, err
	}
	off += p.publicKeySize
	if !bytes.Equal(sk.PublicKey.pk.h[:], b[off:off+SymSize]) {
		return nil, ErrInvalidPrivateKey
	}
	off += SymSize
	copy(sk.z, b[off:])

	if err := sk.sk.fromBytes(p, b[:p.indcpaSecretKeySize]); err != nil {
		return nil, err
	}

	return sk, nil
}

// PublicKey is a Kyber public key.
type PublicKey struct {
	pk *indcpaPublicKey
	p  *ParameterSet
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.pk.toBytes()
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	pk := &PublicKey{pk: new(indcpaPublicKey), p: p}

	if err := pk.pk.fromBytes(p, b); err != nil {
		return nil, err
	}

	return pk, nil
}

// GenerateKeyPair generates a private and public key under the given
// ParameterSet, reading randomness from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	kp := new(PrivateKey)

	var err error
	if kp.PublicKey.pk, kp.sk, err = p.indcpaKeyPair(rng); err != nil {
		return nil, nil, err
	}

	kp.PublicKey.p = p
	kp.z = make([]byte, SymSize)
	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// KEMEncrypt generates a ciphertext and the matching shared secret via the
// CCA-secure Kyber key encapsulation mechanism (the Fujisaki-Okamoto
// transform over indcpaEncrypt, spec.md §4.4.1).
func (pk *PublicKey) KEMEncrypt(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var buf [SymSize]byte
	if _, err = io.ReadFull(rng, buf[:]); err != nil {
		return nil, nil, err
	}
	buf = keccak.Hash256(buf[:]) // Don't release raw RNG output as the message.

	hKr := keccak.Hash512(append(buf[:], pk.pk.h[:]...)) // multitarget countermeasure
	kr := hKr[:]

	cipherText = make([]byte, pk.p.cipherTextSize)
	pk.p.indcpaEncrypt(cipherText, buf[:], pk.pk, kr[SymSize:]) // coins are in kr[SymSize:]

	hc := keccak.Hash256(cipherText)
	copy(kr[SymSize:], hc[:]) // overwrite coins with H(c)
	sharedSecret = make([]byte, SymSize)
	keccak.Squeeze256(sharedSecret, kr)

	return cipherText, sharedSecret, nil
}

// KEMDecrypt recovers the shared secret for a given ciphertext via the
// CCA-secure Kyber key encapsulation mechanism. ok reports whether the
// re-encryption check passed; on failure sharedSecret is still populated,
// with a pseudorandom value derived from z rather than the real pre-key,
// per the FO transform's implicit-rejection contract (spec.md §4.4.2) —
// the KDF step that folds in z runs unconditionally either way, so the
// two cases remain indistinguishable by timing.
//
// cipherText must be exactly p.CipherTextSize() bytes; a caller that
// passes a mis-sized buffer gets a panic, not a silently wrong secret.
func (sk *PrivateKey) KEMDecrypt(cipherText []byte) (sharedSecret []byte, ok bool) {
	var buf [2 * SymSize]byte

	p := sk.PublicKey.p
	if len(cipherText) != p.CipherTextSize() {
		panic(ErrInvalidCipherTextSize)
	}
	p.indcpaDecrypt(buf[:SymSize], cipherText, sk.sk)

	copy(buf[SymSize:], sk.PublicKey.pk.h[:]) // multitarget countermeasure
	kr := keccak.Hash512(buf[:])

	cmp := make([]byte, p.cipherTextSize)
	p.indcpaEncrypt(cmp, buf[:SymSize], sk.PublicKey.pk, kr[SymSize:]) // coins in kr[SymSize:]

	hc := keccak.Hash256(cipherText)
	copy(kr[SymSize:], hc[:]) // overwrite coins with H(c)

	match := verify(cipherText, cmp)
	cmov(kr[:SymSize], sk.z, 1-match) // on mismatch, swap in z instead of the real pre-key

	sharedSecret = make([]byte, SymSize)
	keccak.Squeeze256(sharedSecret, kr[:])

	return sharedSecret, match == 1
}
