// params.go - Kyber round-3 parameterization.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "github.com/vtdev-corp/mlwekem/asymmetric"

const (
	// SymSize is the size of the shared key (and certain internal
	// parameters such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN         = 256
	kyberQ         = 3329
	kyberEta2      = 2
	kyberPolyBytes = 384 // 12 bits/coefficient, little-endian packed.
)

var (
	// ParamsK2 is the k=2 Kyber parameter set, aiming for medium
	// security. It is not named in the public CEX KyberParameters enum
	// (see spec.md §9's open question), but every NIST round-3 KAT file
	// includes a k=2 row, so it is exposed here under its own name rather
	// than silently dropped.
	ParamsK2 = newParameterSet("KYBER-S2Q3329N256", asymmetric.ParameterK2, 2, 3, 10, 4)

	// ParamsK3 is the k=3 Kyber parameter set (CEX KYBERS32400), aiming
	// for high security.
	ParamsK3 = newParameterSet("KYBER-S3Q3329N256", asymmetric.ParameterK3, 3, 2, 10, 4)

	// ParamsK4 is the k=4 Kyber parameter set (CEX KYBERS53168).
	ParamsK4 = newParameterSet("KYBER-S5Q3329N256", asymmetric.ParameterK4, 4, 2, 11, 5)

	// ParamsK5 is the k=5 Kyber parameter set (CEX KYBERS63936), the
	// highest CEX-documented security level.
	ParamsK5 = newParameterSet("KYBER-S6Q3329N256", asymmetric.ParameterK5, 5, 2, 11, 5)

	// allParameterSets backs parameter-id lookups (Initialize).
	allParameterSets = []*ParameterSet{ParamsK2, ParamsK3, ParamsK4, ParamsK5}
)

// ParameterSet is a Kyber round-3 parameter set: the module rank k, the
// eta1 noise parameter, and the two compression depths du (polyvec u) and
// dv (poly v).
type ParameterSet struct {
	name string
	id   asymmetric.Parameter

	k    int
	eta1 int
	du   int
	dv   int

	polyVecSize           int
	compressedPolySize    int
	compressedPolyVecSize int

	indcpaPublicKeySize int
	indcpaSecretKeySize int
	indcpaSize          int

	publicKeySize  int
	secretKeySize  int
	cipherTextSize int
}

// Name returns the formal name of a ParameterSet, e.g. "KYBER-S2Q3329N256".
func (p *ParameterSet) Name() string { return p.name }

// K returns the module rank (the number of polynomials per vector).
func (p *ParameterSet) K() int { return p.k }

// PublicKeySize returns the size of a serialized public key in bytes.
func (p *ParameterSet) PublicKeySize() int { return p.publicKeySize }

// PrivateKeySize returns the size of a serialized private key in bytes.
func (p *ParameterSet) PrivateKeySize() int { return p.secretKeySize }

// CipherTextSize returns the size of a serialized ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int { return p.cipherTextSize }

// parameterSetByID looks up one of the four exported ParameterSets by its
// asymmetric.Parameter tag, as used when Initialize validates a Key.
func parameterSetByID(id asymmetric.Parameter) *ParameterSet {
	for _, p := range allParameterSets {
		if p.id == id {
			return p
		}
	}
	return nil
}

func compressedPolySize(d int) int {
	return kyberN * d / 8
}

func newParameterSet(name string, id asymmetric.Parameter, k, eta1, du, dv int) *ParameterSet {
	p := &ParameterSet{
		name: name,
		id:   id,
		k:    k,
		eta1: eta1,
		du:   du,
		dv:   dv,
	}

	p.polyVecSize = k * kyberPolyBytes
	p.compressedPolySize = compressedPolySize(dv)
	p.compressedPolyVecSize = k * compressedPolySize(du)

	p.indcpaPublicKeySize = p.polyVecSize + SymSize
	p.indcpaSecretKeySize = p.polyVecSize
	p.indcpaSize = p.compressedPolyVecSize + p.compressedPolySize

	p.publicKeySize = p.indcpaPublicKeySize
	p.secretKeySize = p.indcpaSecretKeySize + p.indcpaPublicKeySize + 2*SymSize // sk = s‖pk‖H(pk)‖z
	p.cipherTextSize = p.indcpaSize

	return p
}
