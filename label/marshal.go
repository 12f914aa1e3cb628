//
// marshal.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"encoding/binary"
	"fmt"
)

// marshalLabels writes the wire format shared by Full and Active
// encoded values: a tag byte identifying the kind, a little-endian
// 2-byte wire count, then N*16 bytes of label data. The state (Full
// vs Active) is carried out-of-band by the protocol, exactly as
// spec.md documents.
func marshalLabels(typ ValueType, at func(i int) Label) ([]byte, error) {
	n := typ.WireCount()
	if n > 0xffff {
		return nil, fmt.Errorf("label: wire count %d does not fit in 16 bits", n)
	}

	out := make([]byte, 3+16*n)
	out[0] = byte(typ.Kind)
	binary.LittleEndian.PutUint16(out[1:3], uint16(n))
	for i := 0; i < n; i++ {
		b := at(i).Block()
		copy(out[3+16*i:3+16*i+16], b[:])
	}
	return out, nil
}

func unmarshalLabels(data []byte) (ValueType, []Label, error) {
	if len(data) < 3 {
		return ValueType{}, nil, fmt.Errorf("label: short encoded value")
	}
	kind := Kind(data[0])
	n := int(binary.LittleEndian.Uint16(data[1:3]))
	if len(data) != 3+16*n {
		return ValueType{}, nil, fmt.Errorf("label: length mismatch: got %d want %d",
			len(data), 3+16*n)
	}

	var typ ValueType
	switch kind {
	case KindBit, KindU8, KindU16, KindU32, KindU64, KindU128:
		typ = ValueType{Kind: kind}
		if typ.WireCount() != n {
			return ValueType{}, nil, fmt.Errorf("label: wire count %d does not match type %s", n, kind)
		}
	case KindBytes:
		if n%8 != 0 {
			return ValueType{}, nil, fmt.Errorf("label: bytes wire count %d not a multiple of 8", n)
		}
		typ = BytesType(n / 8)
	default:
		return ValueType{}, nil, fmt.Errorf("label: unknown type tag %d", kind)
	}

	labels := make([]Label, n)
	for i := 0; i < n; i++ {
		var b Block
		copy(b[:], data[3+16*i:3+16*i+16])
		labels[i] = NewLabel(b)
	}
	return typ, labels, nil
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the low
// labels of f.
func (f FullValue) MarshalBinary() ([]byte, error) {
	return marshalLabels(f.typ, f.labels.Low)
}

// UnmarshalFullValue parses a Full encoded value previously produced
// by MarshalBinary, attaching delta so the high labels and Verify
// remain usable.
func UnmarshalFullValue(data []byte, delta Delta) (FullValue, error) {
	typ, labels, err := unmarshalLabels(data)
	if err != nil {
		return FullValue{}, err
	}
	return NewFullValue(typ, labels, delta)
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the
// active labels of a.
func (a ActiveValue) MarshalBinary() ([]byte, error) {
	return marshalLabels(a.typ, a.labels.At)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *ActiveValue) UnmarshalBinary(data []byte) error {
	typ, labels, err := unmarshalLabels(data)
	if err != nil {
		return err
	}
	v, err := NewActiveValue(typ, labels)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
