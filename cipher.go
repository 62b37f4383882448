// cipher.go - Kem, the virtual-cipher wrapper around the Kyber KEM.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"

	"github.com/vtdev-corp/mlwekem/asymmetric"
	"github.com/vtdev-corp/mlwekem/keccak"
	"github.com/vtdev-corp/mlwekem/prng"
)

var (
	// ErrNotInitialized is returned by Encapsulate/Decapsulate when
	// Initialize has not yet been called.
	ErrNotInitialized = errors.New("kyber: cipher not initialized")

	// ErrInvalidParameter is returned when a Key carries an unrecognized
	// or mismatched asymmetric.Parameter tag.
	ErrInvalidParameter = errors.New("kyber: invalid parameter set")

	// ErrWrongKeyClass is returned when the Kem holds a key of the wrong
	// Class for the requested operation (Decapsulate on a Kem initialized
	// with a public key), or when Initialize is given a Key whose Class is
	// neither public nor private.
	ErrWrongKeyClass = errors.New("kyber: wrong key class")
)

// Kem is a stateful wrapper around the Kyber key encapsulation mechanism,
// modeled on the borrow/own key-ownership contract of the
// IAsymmetricCipher family: Generate produces a fresh key pair, Initialize
// binds the cipher to one half of a pair (the Key is read and deserialized
// into the cipher's own copy; no reference to it is kept), and Encapsulate /
// Decapsulate operate against whichever half Initialize was given
// (spec.md §4.4, §9).
type Kem struct {
	rng    io.Reader
	domain []byte

	params *ParameterSet
	pub    *PublicKey
	priv   *PrivateKey
}

// NewKem constructs an uninitialized Kem that reads randomness from rng
// (the caller's choice: prng.System() for production use, or a
// prng.CounterDRBG for deterministic KAT reproduction).
func NewKem(rng io.Reader) *Kem {
	if rng == nil {
		rng = prng.System()
	}
	return &Kem{rng: rng}
}

// Name returns the formal cipher name, e.g. "KYBER-S3Q3329N256", or the
// empty string if the Kem is not yet initialized.
func (k *Kem) Name() string {
	if k.params == nil {
		return ""
	}
	return k.params.Name()
}

// Parameters returns the ParameterSet this Kem is bound to, or nil if not
// yet initialized.
func (k *Kem) Parameters() *ParameterSet { return k.params }

// IsInitialized reports whether Initialize has been called.
func (k *Kem) IsInitialized() bool { return k.params != nil }

// IsEncryption reports whether the Kem holds a public key (and so can
// Encapsulate) as opposed to a private key (Decapsulate).
func (k *Kem) IsEncryption() bool { return k.pub != nil && k.priv == nil }

// PublicKeySize returns the serialized public key size for the bound
// parameter set.
func (k *Kem) PublicKeySize() int { return k.params.PublicKeySize() }

// PrivateKeySize returns the serialized private key size for the bound
// parameter set.
func (k *Kem) PrivateKeySize() int { return k.params.PrivateKeySize() }

// CipherTextSize returns the ciphertext size for the bound parameter set.
func (k *Kem) CipherTextSize() int { return k.params.CipherTextSize() }

// SharedSecretSize returns the size in bytes of the shared secret this
// Kem produces: always SymSize, with or without a DomainKey. The
// cSHAKE-256-derived secret of the domain-key path is also SymSize bytes;
// no longer output length is offered.
func (k *Kem) SharedSecretSize() int { return SymSize }

// DomainKey returns the domain-separation string set by SetDomainKey, or
// nil if none has been set.
func (k *Kem) DomainKey() []byte { return k.domain }

// SetDomainKey configures a domain-separation string that Encapsulate and
// Decapsulate mix into the shared secret: the SHAKE-256 secret of the FO
// transform and the ciphertext are passed through a further cSHAKE-256
// (empty function name, the domain key as customization string), which
// does not replace the SHAKE-256 step. This lets two parties that share a
// Kem configuration but serve different protocols derive non-interchangeable secrets from the
// same ciphertext (spec.md §4.4.3).
func (k *Kem) SetDomainKey(domain []byte) {
	k.domain = append([]byte(nil), domain...)
}

// Generate creates a fresh key pair under paramID and binds this Kem to
// the private half, returning both halves as an asymmetric.KeyPair.
func (k *Kem) Generate(paramID asymmetric.Parameter) (*asymmetric.KeyPair, error) {
	p := parameterSetByID(paramID)
	if p == nil {
		return nil, ErrInvalidParameter
	}

	pub, priv, err := p.GenerateKeyPair(k.rng)
	if err != nil {
		return nil, err
	}

	k.params = p
	k.pub = pub
	k.priv = priv

	pubKey := asymmetric.NewKey(asymmetric.PrimitiveKyber, asymmetric.ClassPublic, paramID, pub.Bytes())
	privKey := asymmetric.NewKey(asymmetric.PrimitiveKyber, asymmetric.ClassPrivate, paramID, priv.Bytes())

	return asymmetric.NewKeyPair(pubKey, privKey), nil
}

// Initialize binds the Kem to an existing key — public for encapsulation,
// private for decapsulation. The Key is read, not copied or retained
// beyond this call's deserialization; Go has no borrow checker, so this
// is a documentation-level contract rather than one the compiler
// enforces (spec.md §9).
func (k *Kem) Initialize(key *asymmetric.Key) error {
	if key.Primitive() != asymmetric.PrimitiveKyber {
		return ErrInvalidParameter
	}

	p := parameterSetByID(key.Parameter())
	if p == nil {
		return ErrInvalidParameter
	}

	switch key.Class() {
	case asymmetric.ClassPublic:
		pub, err := p.PublicKeyFromBytes(key.Bytes())
		if err != nil {
			return err
		}
		k.params, k.pub, k.priv = p, pub, nil

	case asymmetric.ClassPrivate:
		priv, err := p.PrivateKeyFromBytes(key.Bytes())
		if err != nil {
			return err
		}
		k.params, k.pub, k.priv = p, &priv.PublicKey, priv

	default:
		return ErrWrongKeyClass
	}

	return nil
}

// Encapsulate generates a ciphertext and its matching shared secret
// against the bound public key.
func (k *Kem) Encapsulate() (cipherText, sharedSecret []byte, err error) {
	if !k.IsInitialized() || k.pub == nil {
		return nil, nil, ErrNotInitialized
	}

	cipherText, ss, err := k.pub.KEMEncrypt(k.rng)
	if err != nil {
		return nil, nil, err
	}

	return cipherText, k.expand(ss, cipherText), nil
}

// Decapsulate recovers the shared secret for cipherText against the
// bound private key. ok reports whether the ciphertext's re-encryption
// check passed; on a failed check sharedSecret is still fully populated,
// with a pseudorandom value derived from the private key's implicit-
// rejection seed rather than the real pre-key, per the FO transform's
// implicit-rejection contract (spec.md §4.4.2, §6.1, §7). A non-nil
// error is reserved for programmer errors (uninitialized cipher, wrong
// key class, wrong-sized ciphertext), never for a rejected ciphertext.
func (k *Kem) Decapsulate(cipherText []byte) (sharedSecret []byte, ok bool, err error) {
	if !k.IsInitialized() {
		return nil, false, ErrNotInitialized
	}
	if k.priv == nil {
		return nil, false, ErrWrongKeyClass
	}
	if len(cipherText) != k.params.CipherTextSize() {
		return nil, false, ErrInvalidCipherTextSize
	}

	ss, ok := k.priv.KEMDecrypt(cipherText)
	return k.expand(ss, cipherText), ok, nil
}

// expand mixes in the configured domain key, if any, via cSHAKE-256 over
// the raw FO-transform secret and the ciphertext.
func (k *Kem) expand(ss, cipherText []byte) []byte {
	if len(k.domain) == 0 {
		return ss
	}

	out := make([]byte, SharedSecretSize)
	xof := keccak.NewCShake256(nil, k.domain)
	xof.Absorb(ss)
	xof.Absorb(cipherText)
	xof.Squeeze(out)
	return out
}

// SharedSecretSize is the fixed output size of a plain (non-domain-keyed)
// shared secret.
const SharedSecretSize = SymSize
