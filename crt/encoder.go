//
// encoder.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	"encoding/binary"
	"math/big"

	"github.com/markkurossi/gclabel/label"
	"golang.org/x/crypto/chacha20"
)

// namespace tags separate the base-label keystream from the
// delta keystream within the same (seed, streamID) nonce space.
const (
	nsBase  byte = 0
	nsDelta byte = 1
)

// Encoder deterministically derives CRT base labels and a CrtDelta
// from a 256 bit seed, mirroring label.Encoder's ChaCha20-keyed
// construction (original_source names this ChaChaCrtEncoder).
type Encoder struct {
	seed  [label.SeedLen]byte
	delta CrtDelta
}

// NewEncoder creates an Encoder from seed, drawing one delta per
// supported prime at construction.
func NewEncoder(seed [label.SeedLen]byte) (*Encoder, error) {
	e := &Encoder{seed: seed}

	byPrime := make(map[uint8]label.Block, len(Primes))
	for i, p := range Primes {
		block, err := e.draw(0, uint8(i), nsDelta)
		if err != nil {
			return nil, err
		}
		v := withResidueOne(bigFromBlock(block), p)
		byPrime[p] = reduce(v)
	}
	e.delta = CrtDelta{byPrime: byPrime}
	return e, nil
}

// Delta returns the encoder's CrtDelta.
func (e *Encoder) Delta() CrtDelta {
	return e.delta
}

func nonceFor(streamID uint64, idx uint8, ns byte) [chacha20.NonceSize]byte {
	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(nonce[0:8], streamID)
	nonce[8] = idx
	nonce[9] = ns
	return nonce
}

// draw reads one 16 byte keystream block for (streamID, idx, ns).
func (e *Encoder) draw(streamID uint64, idx uint8, ns byte) (label.Block, error) {
	nonce := nonceFor(streamID, idx, ns)
	cipher, err := chacha20.NewUnauthenticatedCipher(e.seed[:], nonce[:])
	if err != nil {
		return label.Block{}, err
	}

	var out label.Block
	cipher.XORKeyStream(out[:], out[:])
	return out, nil
}

// Encode draws a fresh Full CRT value of type typ from stream
// streamID: one random base label per prime, reduced into the ring.
func (e *Encoder) Encode(streamID uint64, typ CrtValueType) (FullCrtValue, error) {
	base := make([]label.Block, len(typ.Primes))
	for i := range typ.Primes {
		block, err := e.draw(streamID, uint8(i), nsBase)
		if err != nil {
			return FullCrtValue{}, err
		}
		base[i] = reduce(bigFromBlock(block))
	}
	return NewFullCrtValue(typ, base, e.delta)
}

// RangeFits reports whether x fits within typ's representable range
// (the product of its primes), a convenience check for callers before
// calling Select.
func RangeFits(typ CrtValueType, x uint64) bool {
	return new(big.Int).SetUint64(x).Cmp(typ.Range()) < 0
}
