//
// decoding.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	"fmt"
	"math/big"

	"github.com/markkurossi/gclabel/label"
)

// crtDecodingEntry carries, for one modulus, the prime and the wire's
// base block. The evaluator recovers a residue by comparing the
// active label's residue against the base's: the CRT analogue of the
// binary Decoding's pointer-bit trick.
type crtDecodingEntry struct {
	prime uint8
	base  label.Block
}

func (e crtDecodingEntry) residueOf(active label.Block) uint8 {
	c0 := residue(e.base, e.prime)
	cx := residue(active, e.prime)
	return uint8((int(cx) - int(c0) + int(e.prime)) % int(e.prime))
}

// CrtDecoding is the per-modulus mapping from active block to residue,
// transmitted by the generator once a value's plaintext may be
// revealed. Its wire format is, per modulus: the prime (1 byte) and
// the base block (16 bytes).
type CrtDecoding struct {
	entries []crtDecodingEntry
}

// Marshal serializes the decoding using the wire format from
// spec.md §6.
func (d CrtDecoding) Marshal() []byte {
	out := make([]byte, 0, 17*len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.prime)
		out = append(out, e.base[:]...)
	}
	return out
}

// reconstruct recovers the unique integer in [0, product(primes))
// whose residue modulo primes[i] is residues[i], using Garner's CRT
// algorithm. primes must be pairwise coprime and each residues[i] must
// be a valid residue mod primes[i]; violating either means the
// modulus table or the label data has been corrupted and the value
// cannot be trusted, so reconstruct reports ErrDecode rather than
// returning a number silently reconstructed from garbage.
func reconstruct(primes []uint8, residues []uint8) (uint64, error) {
	seen := make(map[uint8]bool, len(primes))
	for i, p := range primes {
		if p < 2 {
			return 0, fmt.Errorf("%w: modulus %d is not a valid prime", ErrDecode, p)
		}
		if seen[p] {
			return 0, fmt.Errorf("%w: modulus %d appears more than once", ErrDecode, p)
		}
		seen[p] = true
		if residues[i] >= p {
			return 0, fmt.Errorf("%w: residue %d is not valid mod %d", ErrDecode, residues[i], p)
		}
	}

	x := big.NewInt(int64(residues[0]))
	m := big.NewInt(int64(primes[0]))

	for i := 1; i < len(primes); i++ {
		pi := big.NewInt(int64(primes[i]))
		ri := big.NewInt(int64(residues[i]))

		diff := new(big.Int).Sub(ri, x)
		diff.Mod(diff, pi)

		mModPi := new(big.Int).Mod(m, pi)
		mInv := new(big.Int).ModInverse(mModPi, pi)
		if mInv == nil {
			return 0, fmt.Errorf("%w: modulus %d is not coprime with the preceding product", ErrDecode, primes[i])
		}

		t := new(big.Int).Mul(diff, mInv)
		t.Mod(t, pi)

		x.Add(x, new(big.Int).Mul(m, t))
		m.Mul(m, pi)
		x.Mod(x, m)
	}
	return x.Uint64(), nil
}
