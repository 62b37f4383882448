// enums.go - Enumerations tagging an asymmetric key.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package asymmetric supplies the key and key-pair containers shared
// across asymmetric primitives (here, only the lattice KEM implements
// them; the enumerations mirror CEX's AsymmetricPrimitives /
// AsymmetricKeyTypes / AsymmetricParameters split so a future primitive
// could reuse the same container without changes).
package asymmetric

// Primitive identifies which asymmetric cipher a Key belongs to.
type Primitive byte

const (
	// PrimitiveNone marks an unspecified primitive.
	PrimitiveNone Primitive = iota
	// PrimitiveKyber marks a Module-LWE KEM key.
	PrimitiveKyber
)

// Class identifies whether a Key is the public or private half of a pair.
type Class byte

const (
	// ClassNone marks an unspecified key class.
	ClassNone Class = iota
	// ClassPublic marks a public key.
	ClassPublic
	// ClassPrivate marks a private key.
	ClassPrivate
)

// Parameter identifies the parameter set a Key was generated under.
type Parameter uint16

const (
	// ParameterNone marks an unspecified parameter set.
	ParameterNone Parameter = iota
	// ParameterK2 is the k=2 (medium security) Kyber parameter set.
	ParameterK2
	// ParameterK3 is the k=3 (high security) Kyber parameter set.
	ParameterK3
	// ParameterK4 is the k=4 Kyber parameter set.
	ParameterK4
	// ParameterK5 is the k=5 Kyber parameter set.
	ParameterK5
)

// knownPrimitives, knownClasses and knownParameters back Key.UnmarshalBinary's
// validation (spec.md §6.3: "Deserialization validates all three enums
// against the known set").
var (
	knownPrimitives = map[Primitive]bool{PrimitiveKyber: true}
	knownClasses    = map[Class]bool{ClassPublic: true, ClassPrivate: true}
	knownParameters = map[Parameter]bool{
		ParameterK2: true, ParameterK3: true, ParameterK4: true, ParameterK5: true,
	}
)
