//
// label.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

import "io"

// Label is a single wire label: one endpoint of a wire's label pair.
// The low label represents bit 0; the high label is low^Delta. The
// pointer bit (LSB) of a label drives Point-and-Permute.
type Label struct {
	block Block
}

// NewLabel wraps a block as a label.
func NewLabel(b Block) Label {
	return Label{block: b}
}

// RandomLabel draws a new random label from rng. Exposed only for
// tests: production code draws labels through an Encoder so that
// results are reproducible from a seed.
func RandomLabel(rng io.Reader) (Label, error) {
	b, err := RandomBlock(rng)
	if err != nil {
		return Label{}, err
	}
	return Label{block: b}, nil
}

// Block returns the label's underlying block.
func (l Label) Block() Block {
	return l.block
}

// Xor returns l^o.
func (l Label) Xor(o Label) Label {
	return Label{block: l.block.Xor(o.block)}
}

// XorDelta returns the label XORed with a Delta, ie the other
// endpoint of the label pair l belongs to.
func (l Label) XorDelta(d Delta) Label {
	return Label{block: l.block.Xor(d.block)}
}

// PointerBit returns the label's Point-and-Permute pointer bit.
func (l Label) PointerBit() int {
	return l.block.Lsb()
}

// Equal tests whether two labels are identical.
func (l Label) Equal(o Label) bool {
	return l.block == o.block
}

// String returns the hex encoding of the label.
func (l Label) String() string {
	return l.block.String()
}
