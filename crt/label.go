//
// label.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	"errors"
	"fmt"

	"github.com/markkurossi/gclabel/label"
)

// ErrModulusMismatch is returned when two LabelModN values tagged
// with different primes are combined.
var ErrModulusMismatch = errors.New("crt: modulus mismatch")

// LabelModN is a single CRT wire label together with the prime
// modulus it represents a residue of.
type LabelModN struct {
	Block label.Block
	Mod   uint8
}

// Residue returns the label's residue modulo its prime.
func (l LabelModN) Residue() uint8 {
	return residue(l.Block, l.Mod)
}

// addLabel implements add_label: if a encodes residue x and b encodes
// residue y under the same base reference, the result encodes
// (x+y) mod p.
func addLabel(a, b LabelModN) (LabelModN, error) {
	if a.Mod != b.Mod {
		return LabelModN{}, fmt.Errorf("%w: %d != %d", ErrModulusMismatch, a.Mod, b.Mod)
	}
	return LabelModN{Block: addBlocks(a.Block, b.Block), Mod: a.Mod}, nil
}

// cmulLabel implements cmul_label: if a encodes residue x, the result
// encodes (c*x) mod p.
func cmulLabel(a LabelModN, c int64) LabelModN {
	return LabelModN{Block: mulScalarBlock(a.Block, c), Mod: a.Mod}
}

// negateLabel implements negate_label: if a encodes residue x, the
// result encodes (-x) mod p.
func negateLabel(a LabelModN) LabelModN {
	return LabelModN{Block: negBlock(a.Block), Mod: a.Mod}
}

// CrtDelta holds one global delta per supported prime, analogous to
// the binary package's Delta. For prime p, deltaOf(p) mod p == 1, so
// that advancing a base label by one delta advances its tracked
// residue by exactly one, mod p — the CRT generalization of Delta's
// forced LSB=1 pointer bit.
type CrtDelta struct {
	byPrime map[uint8]label.Block
}

// GetDeltaByModulus retrieves the delta for prime p.
func GetDeltaByModulus(d CrtDelta, p uint8) (label.Block, error) {
	b, ok := d.byPrime[p]
	if !ok {
		return label.Block{}, fmt.Errorf("crt: no delta for modulus %d", p)
	}
	return b, nil
}

// deltaLabel returns the delta for p as a LabelModN.
func (d CrtDelta) deltaLabel(p uint8) (LabelModN, error) {
	b, err := GetDeltaByModulus(d, p)
	if err != nil {
		return LabelModN{}, err
	}
	return LabelModN{Block: b, Mod: p}, nil
}

// labelForResidue returns the label encoding residue r under base w0
// for prime p, computed as w0 + r*delta(p).
func (d CrtDelta) labelForResidue(p uint8, w0 label.Block, r uint8) (LabelModN, error) {
	delta, err := d.deltaLabel(p)
	if err != nil {
		return LabelModN{}, err
	}
	base := LabelModN{Block: w0, Mod: p}
	return addLabel(base, cmulLabel(delta, int64(r)))
}
