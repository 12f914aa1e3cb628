//
// modulus.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

// Package crt implements the arithmetic (CRT / BMR16-style) counterpart
// of the binary label package: labels modulo small primes, combined
// under a shared global modulus so that addition, scalar
// multiplication, and negation of labels are plain ring operations.
//
// Concrete group. spec.md leaves the group operation for p>2 labels
// implementation-defined. This package fixes Modulus = M*C, where M is
// the product of the supported primes and C is a fixed power-of-two
// cofactor. Because every supported prime divides M (hence Modulus),
// reducing a value mod Modulus never changes its residue modulo any
// supported prime: (a+b) mod Modulus ≡ a+b (mod p) for every supported
// p. That is exactly what add_label/cmul_label/negate_label need to
// be literal ring operations on Modulus while still tracking per-prime
// residues exactly, without any opaque delta table.
package crt

import (
	"math/big"

	"github.com/markkurossi/gclabel/label"
)

// Primes is the fixed prime set supported by this package: the first
// 11 primes, following original_source's circom-derived CRT modulus
// choice (their product exceeds 2^32, enough to cover a 32 bit
// arithmetic value).
var Primes = []uint8{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}

// cofactorBits is the bit width of the blinding cofactor C added on
// top of the prime product M, chosen so that Modulus fits comfortably
// within label.Block's 128 bits.
const cofactorBits = 88

// primeProduct and Modulus are computed once at package
// initialization from the fixed Primes set.
var (
	primeProduct = func() *big.Int {
		m := big.NewInt(1)
		for _, p := range Primes {
			m.Mul(m, big.NewInt(int64(p)))
		}
		return m
	}()

	cofactor = new(big.Int).Lsh(big.NewInt(1), cofactorBits)

	// Modulus is the ring every LabelModN block is reduced into.
	Modulus = new(big.Int).Mul(primeProduct, cofactor)
)

// bigFromBlock interprets a block as a big-endian unsigned integer.
func bigFromBlock(b label.Block) *big.Int {
	return new(big.Int).SetBytes(b[:])
}

// blockFromBig encodes a non-negative integer less than 2^128 as a
// block, big-endian, zero padded on the left.
func blockFromBig(v *big.Int) label.Block {
	var b label.Block
	bytes := v.Bytes()
	copy(b[16-len(bytes):], bytes)
	return b
}

// reduce returns v mod Modulus as a non-negative block.
func reduce(v *big.Int) label.Block {
	r := new(big.Int).Mod(v, Modulus)
	return blockFromBig(r)
}

// addBlocks returns (a+b) mod Modulus.
func addBlocks(a, b label.Block) label.Block {
	sum := new(big.Int).Add(bigFromBlock(a), bigFromBlock(b))
	return reduce(sum)
}

// negBlock returns (-a) mod Modulus.
func negBlock(a label.Block) label.Block {
	neg := new(big.Int).Neg(bigFromBlock(a))
	return reduce(neg)
}

// mulScalarBlock returns (c*a) mod Modulus for an int64 scalar c.
func mulScalarBlock(a label.Block, c int64) label.Block {
	prod := new(big.Int).Mul(bigFromBlock(a), big.NewInt(c))
	return reduce(prod)
}

// residue returns block's residue modulo the small prime p.
func residue(block label.Block, p uint8) uint8 {
	r := new(big.Int).Mod(bigFromBlock(block), big.NewInt(int64(p)))
	return uint8(r.Int64())
}

// withResidueOne nudges v upward by at most p-1 so that the result is
// congruent to 1 modulo p, without disturbing v's residue modulo any
// other prime by more than that same small nudge (immaterial, since
// each prime's CrtDelta is drawn and used independently).
func withResidueOne(v *big.Int, p uint8) *big.Int {
	pBig := big.NewInt(int64(p))
	r := new(big.Int).Mod(v, pBig)
	adjust := new(big.Int).Sub(big.NewInt(1), r)
	adjust.Mod(adjust, pBig)
	return new(big.Int).Add(v, adjust)
}
