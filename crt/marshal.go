//
// marshal.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/gclabel/label"
)

// crtTag identifies the wire format below as a CRT encoded value, as
// opposed to a CrtDecoding (which shares the same per-modulus
// prime+block shape but carries no tag byte of its own).
const crtTag = 0xcf

// marshalCrtLabels writes the wire format shared by FullCrtValue and
// ActiveCrtValue: a tag byte, a little-endian 2-byte modulus count,
// then per modulus the prime (1 byte) and its Block (16 bytes) —
// generalizing the CrtDecoding layout from spec.md §6 to carry labels
// instead of base/decoding data.
func marshalCrtLabels(primes []uint8, blocks []label.Block) ([]byte, error) {
	n := len(primes)
	if n > 0xffff {
		return nil, fmt.Errorf("crt: modulus count %d does not fit in 16 bits", n)
	}

	out := make([]byte, 3+17*n)
	out[0] = crtTag
	binary.LittleEndian.PutUint16(out[1:3], uint16(n))
	for i := range primes {
		off := 3 + 17*i
		out[off] = primes[i]
		copy(out[off+1:off+17], blocks[i][:])
	}
	return out, nil
}

func unmarshalCrtLabels(data []byte) ([]uint8, []label.Block, error) {
	if len(data) < 3 {
		return nil, nil, fmt.Errorf("crt: short encoded value")
	}
	if data[0] != crtTag {
		return nil, nil, fmt.Errorf("crt: unknown type tag %d", data[0])
	}
	n := int(binary.LittleEndian.Uint16(data[1:3]))
	if len(data) != 3+17*n {
		return nil, nil, fmt.Errorf("crt: length mismatch: got %d want %d",
			len(data), 3+17*n)
	}

	primes := make([]uint8, n)
	blocks := make([]label.Block, n)
	for i := 0; i < n; i++ {
		off := 3 + 17*i
		primes[i] = data[off]
		copy(blocks[i][:], data[off+1:off+17])
	}
	return primes, blocks, nil
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the
// base labels of f.
func (f FullCrtValue) MarshalBinary() ([]byte, error) {
	return marshalCrtLabels(f.typ.Primes, f.base)
}

// UnmarshalFullCrtValue parses a Full CRT value previously produced by
// MarshalBinary, attaching delta so Select and Decoding remain usable.
func UnmarshalFullCrtValue(data []byte, delta CrtDelta) (FullCrtValue, error) {
	primes, blocks, err := unmarshalCrtLabels(data)
	if err != nil {
		return FullCrtValue{}, err
	}
	return NewFullCrtValue(CrtValueType{Primes: primes}, blocks, delta)
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the
// active labels of a.
func (a ActiveCrtValue) MarshalBinary() ([]byte, error) {
	return marshalCrtLabels(a.typ.Primes, a.labels)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *ActiveCrtValue) UnmarshalBinary(data []byte) error {
	primes, blocks, err := unmarshalCrtLabels(data)
	if err != nil {
		return err
	}
	v, err := NewActiveCrtValue(CrtValueType{Primes: primes}, blocks)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
