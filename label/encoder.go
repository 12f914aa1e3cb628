//
// encoder.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// SeedLen is the length, in bytes, of an Encoder seed.
const SeedLen = 32

// Encoder deterministically derives labels and a Delta from a 256 bit
// seed, using ChaCha20 as the underlying pseudorandom stream. Two
// Encoders built from the same seed produce bit-identical output for
// the same (streamID, type) pair.
//
// An Encoder holds no mutable state: its seed and Delta are fixed at
// construction and every Encode call builds its own cipher, so
// concurrent Encode calls on one Encoder do not interfere with each
// other. Encoders built from the same seed with disjoint ranges of
// stream ids produce non-overlapping outputs.
type Encoder struct {
	seed  [SeedLen]byte
	delta Delta
}

// NewEncoder creates an Encoder from seed, drawing its Delta once by
// requesting 16 bytes from stream index 0.
func NewEncoder(seed [SeedLen]byte) (*Encoder, error) {
	e := &Encoder{seed: seed}

	data, err := e.block(0, 1)
	if err != nil {
		return nil, err
	}
	var b Block
	copy(b[:], data)
	e.delta = Delta{block: b.SetLsb()}
	return e, nil
}

// Delta returns the encoder's Delta.
func (e *Encoder) Delta() Delta {
	return e.delta
}

// streamNonce builds the 12 byte ChaCha20 nonce for streamID: the low
// 8 bytes hold streamID little-endian, the high 4 bytes are zero.
func streamNonce(streamID uint64) [chacha20.NonceSize]byte {
	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(nonce[0:8], streamID)
	return nonce
}

// block draws n 16-byte blocks of keystream for streamID, starting
// fresh at counter 0 each call. This keeps Encode a pure function of
// (seed, streamID, typ): "seeking" to a stream's position is simply
// constructing a new cipher keyed by that stream's nonce.
func (e *Encoder) block(streamID uint64, n int) ([]byte, error) {
	nonce := streamNonce(streamID)
	cipher, err := chacha20.NewUnauthenticatedCipher(e.seed[:], nonce[:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 16*n)
	cipher.XORKeyStream(out, out)
	return out, nil
}

// Encode draws a fresh Full encoded value of type typ from stream
// streamID. Repeated calls with the same (seed, streamID, typ) yield
// identical results.
func (e *Encoder) Encode(streamID uint64, typ ValueType) (FullValue, error) {
	n := typ.WireCount()
	if n <= 0 {
		return FullValue{}, fmt.Errorf("label: invalid wire count for type %s", typ.Kind)
	}

	data, err := e.block(streamID, n)
	if err != nil {
		return FullValue{}, err
	}

	low := make([]Label, n)
	for i := 0; i < n; i++ {
		var b Block
		copy(b[:], data[16*i:16*i+16])
		low[i] = NewLabel(b)
	}
	return NewFullValue(typ, low, e.delta)
}
