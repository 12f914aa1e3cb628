//
// value.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/markkurossi/gclabel/label"
)

// ErrInvalidLength is returned when a CRT labels collection does not
// match its value type's prime set.
var ErrInvalidLength = errors.New("crt: invalid length")

// ErrTypeMismatch is returned when values built from different prime
// sets are combined.
var ErrTypeMismatch = errors.New("crt: type mismatch")

// ErrDecode is returned by Decode when the supplied CrtDecoding's
// modulus table disagrees with the value's own prime set, or the
// recovered residues do not reconstruct to a valid value: the CRT
// counterpart of spec.md §7's DecodeError kind.
var ErrDecode = errors.New("crt: decode failed")

// CrtValueType names the prime set an arithmetic value is encoded
// under.
type CrtValueType struct {
	Primes []uint8
}

// CrtU8 covers the range [0, 2310) (primes 2,3,5,7,11), enough for any
// 8 bit value.
var CrtU8 = CrtValueType{Primes: []uint8{2, 3, 5, 7, 11}}

// CrtU32 covers the full Primes set, whose product exceeds 2^32.
var CrtU32 = CrtValueType{Primes: Primes}

// Range returns the product of the type's primes: the size of the
// plaintext range the type can faithfully represent.
func (t CrtValueType) Range() *big.Int {
	m := big.NewInt(1)
	for _, p := range t.Primes {
		m.Mul(m, big.NewInt(int64(p)))
	}
	return m
}

func (t CrtValueType) equal(o CrtValueType) bool {
	if len(t.Primes) != len(o.Primes) {
		return false
	}
	for i := range t.Primes {
		if t.Primes[i] != o.Primes[i] {
			return false
		}
	}
	return true
}

// FullCrtValue is the generator's view of a CRT encoded integer: one
// base label W0 per prime, plus the encoder's CrtDelta.
type FullCrtValue struct {
	typ   CrtValueType
	base  []label.Block
	delta CrtDelta
}

// NewFullCrtValue builds a Full CRT value from explicit base labels
// and delta.
func NewFullCrtValue(typ CrtValueType, base []label.Block, delta CrtDelta) (FullCrtValue, error) {
	if len(base) != len(typ.Primes) {
		return FullCrtValue{}, ErrInvalidLength
	}
	return FullCrtValue{typ: typ, base: base, delta: delta}, nil
}

// Type returns the value's CRT type.
func (f FullCrtValue) Type() CrtValueType {
	return f.typ
}

// Select computes, for each prime, the residue of x and returns the
// Active label encoding it.
func (f FullCrtValue) Select(x uint64) (ActiveCrtValue, error) {
	labels := make([]label.Block, len(f.typ.Primes))
	for i, p := range f.typ.Primes {
		r := uint8(x % uint64(p))
		l, err := f.delta.labelForResidue(p, f.base[i], r)
		if err != nil {
			return ActiveCrtValue{}, err
		}
		labels[i] = l.Block
	}
	return ActiveCrtValue{typ: f.typ, labels: labels}, nil
}

// Decoding returns the CrtDecoding artifact for f: the prime and base
// block for every modulus.
func (f FullCrtValue) Decoding() CrtDecoding {
	entries := make([]crtDecodingEntry, len(f.typ.Primes))
	for i, p := range f.typ.Primes {
		entries[i] = crtDecodingEntry{prime: p, base: f.base[i]}
	}
	return CrtDecoding{entries: entries}
}

// Add returns the Full value representing f+o, combining base labels
// modulus-wise. f and o must share a type and CrtDelta.
func (f FullCrtValue) Add(o FullCrtValue) (FullCrtValue, error) {
	if !f.typ.equal(o.typ) {
		return FullCrtValue{}, ErrTypeMismatch
	}
	base := make([]label.Block, len(f.base))
	for i, p := range f.typ.Primes {
		sum, err := addLabel(LabelModN{Block: f.base[i], Mod: p}, LabelModN{Block: o.base[i], Mod: p})
		if err != nil {
			return FullCrtValue{}, err
		}
		base[i] = sum.Block
	}
	return FullCrtValue{typ: f.typ, base: base, delta: f.delta}, nil
}

// Cmul returns the Full value representing c*f.
func (f FullCrtValue) Cmul(c int64) FullCrtValue {
	base := make([]label.Block, len(f.base))
	for i, p := range f.typ.Primes {
		base[i] = cmulLabel(LabelModN{Block: f.base[i], Mod: p}, c).Block
	}
	return FullCrtValue{typ: f.typ, base: base, delta: f.delta}
}

// ActiveCrtValue is the evaluator's view of a CRT encoded integer: one
// chosen residue label per prime.
type ActiveCrtValue struct {
	typ    CrtValueType
	labels []label.Block
}

// NewActiveCrtValue builds an Active CRT value from explicit labels.
func NewActiveCrtValue(typ CrtValueType, labels []label.Block) (ActiveCrtValue, error) {
	if len(labels) != len(typ.Primes) {
		return ActiveCrtValue{}, ErrInvalidLength
	}
	return ActiveCrtValue{typ: typ, labels: labels}, nil
}

// Type returns the value's CRT type.
func (a ActiveCrtValue) Type() CrtValueType {
	return a.typ
}

// Add returns the wirewise (modulus-wise) sum of a and o, realizing
// addition-gate evaluation directly on active labels.
func (a ActiveCrtValue) Add(o ActiveCrtValue) (ActiveCrtValue, error) {
	if !a.typ.equal(o.typ) {
		return ActiveCrtValue{}, ErrTypeMismatch
	}
	labels := make([]label.Block, len(a.labels))
	for i, p := range a.typ.Primes {
		sum, err := addLabel(LabelModN{Block: a.labels[i], Mod: p}, LabelModN{Block: o.labels[i], Mod: p})
		if err != nil {
			return ActiveCrtValue{}, err
		}
		labels[i] = sum.Block
	}
	return ActiveCrtValue{typ: a.typ, labels: labels}, nil
}

// Cmul returns c*a, modulus-wise.
func (a ActiveCrtValue) Cmul(c int64) ActiveCrtValue {
	labels := make([]label.Block, len(a.labels))
	for i, p := range a.typ.Primes {
		labels[i] = cmulLabel(LabelModN{Block: a.labels[i], Mod: p}, c).Block
	}
	return ActiveCrtValue{typ: a.typ, labels: labels}
}

// Negate returns -a, modulus-wise.
func (a ActiveCrtValue) Negate() ActiveCrtValue {
	labels := make([]label.Block, len(a.labels))
	for i, p := range a.typ.Primes {
		labels[i] = negateLabel(LabelModN{Block: a.labels[i], Mod: p}).Block
	}
	return ActiveCrtValue{typ: a.typ, labels: labels}
}

// Decode recovers the plaintext integer a encodes, reading off each
// prime's residue via d and reconstructing with Garner's CRT algorithm.
func (a ActiveCrtValue) Decode(d CrtDecoding) (uint64, error) {
	if len(d.entries) != len(a.labels) {
		return 0, ErrInvalidLength
	}

	residues := make([]uint8, len(a.labels))
	for i, p := range a.typ.Primes {
		if d.entries[i].prime != p {
			return 0, fmt.Errorf("%w: modulus table disagrees at index %d: have %d want %d",
				ErrDecode, i, d.entries[i].prime, p)
		}
		residues[i] = d.entries[i].residueOf(a.labels[i])
	}
	return reconstruct(a.typ.Primes, residues)
}
