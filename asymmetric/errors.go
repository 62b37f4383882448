// errors.go - Sentinel errors for the asymmetric key containers.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package asymmetric

import "errors"

var (
	// ErrInvalidPrimitive is returned when a Key's primitive enum is
	// unknown or None.
	ErrInvalidPrimitive = errors.New("asymmetric: invalid primitive")
	// ErrInvalidClass is returned when a Key's class enum is unknown or
	// None.
	ErrInvalidClass = errors.New("asymmetric: invalid key class")
	// ErrInvalidParameter is returned when a Key's parameter enum is
	// unknown or None.
	ErrInvalidParameter = errors.New("asymmetric: invalid parameter set")
	// ErrShortBuffer is returned when UnmarshalBinary is given fewer than
	// the 4-byte header.
	ErrShortBuffer = errors.New("asymmetric: buffer too short for key header")
)
