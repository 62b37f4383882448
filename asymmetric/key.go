// key.go - The AsymmetricKey value type.
//
// To the extent possible under law, the authors have waived all copyright
// and related or neighboring rights to this file, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package asymmetric

// headerSize is the 4-byte [primitive, class, parameter-low, parameter-high]
// prefix spec.md §6.3 defines.
const headerSize = 4

// Key is an immutable asymmetric key: raw key-material bytes tagged with
// the primitive, class and parameter set they were produced under. It
// mirrors the CEX IAsymmetricKey family (MPKCPublicKey and friends), which
// all reduce to the same (bytes, primitive, class, parameters) tuple.
type Key struct {
	primitive Primitive
	class     Class
	parameter Parameter
	data      []byte
}

// NewKey constructs a Key from its tag fields and raw material. The
// backing slice is copied so the caller may reuse or discard its buffer.
func NewKey(primitive Primitive, class Class, parameter Parameter, data []byte) *Key {
	buf := make([]byte, len(data))
	copy(buf, data)
	return &Key{primitive: primitive, class: class, parameter: parameter, data: buf}
}

// Primitive returns the asymmetric primitive this key belongs to.
func (k *Key) Primitive() Primitive { return k.primitive }

// Class reports whether this is a public or private key.
func (k *Key) Class() Class { return k.class }

// Parameter returns the parameter set this key was generated under.
func (k *Key) Parameter() Parameter { return k.parameter }

// Bytes returns the raw key material (without the wire header).
func (k *Key) Bytes() []byte {
	buf := make([]byte, len(k.data))
	copy(buf, k.data)
	return buf
}

// MarshalBinary serializes the key as a 4-byte header followed by the raw
// key material: [primitive, class, parameter-low, parameter-high] ‖ data.
func (k *Key) MarshalBinary() ([]byte, error) {
	out := make([]byte, headerSize+len(k.data))
	out[0] = byte(k.primitive)
	out[1] = byte(k.class)
	out[2] = byte(k.parameter)
	out[3] = byte(k.parameter >> 8)
	copy(out[headerSize:], k.data)
	return out, nil
}

// UnmarshalBinary deserializes a Key previously produced by MarshalBinary,
// validating all three enums against the known set (spec.md §6.3).
func (k *Key) UnmarshalBinary(buf []byte) error {
	if len(buf) < headerSize {
		return ErrShortBuffer
	}

	primitive := Primitive(buf[0])
	class := Class(buf[1])
	parameter := Parameter(buf[2]) | Parameter(buf[3])<<8

	if !knownPrimitives[primitive] {
		return ErrInvalidPrimitive
	}
	if !knownClasses[class] {
		return ErrInvalidClass
	}
	if !knownParameters[parameter] {
		return ErrInvalidParameter
	}

	k.primitive = primitive
	k.class = class
	k.parameter = parameter
	k.data = make([]byte, len(buf)-headerSize)
	copy(k.data, buf[headerSize:])
	return nil
}
