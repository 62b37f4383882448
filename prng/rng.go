// rng.go - Rng contract for the lattice KEM.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package prng supplies the KEM's only mutable dependency: a byte source.
// Two realizations are provided, a system-entropy source for ordinary use
// and a deterministic counter DRBG for reproducing NIST KAT vectors.
package prng

import (
	"crypto/rand"
	"io"
)

// Source fills byte slices with pseudorandom (or, for System, actually
// random) data. It is the Go analogue of the `fn fill(&mut self, out:
// &mut [u8])` contract in spec.md §4.5: any io.Reader satisfies it.
type Source interface {
	io.Reader
}

// System returns the default entropy source, backed by crypto/rand.
func System() Source {
	return rand.Reader
}
