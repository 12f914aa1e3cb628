//
// label_test.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	"testing"

	"github.com/markkurossi/gclabel/label"
)

func TestAddLabelResidue(t *testing.T) {
	seed := randomSeed(t)
	e, err := NewEncoder(seed)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	const p = 7
	base, err := e.draw(1, 0, nsBase)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	base = reduce(bigFromBlock(base))

	a, err := e.delta.labelForResidue(p, base, 3)
	if err != nil {
		t.Fatalf("labelForResidue failed: %v", err)
	}
	b, err := e.delta.labelForResidue(p, base, 4)
	if err != nil {
		t.Fatalf("labelForResidue failed: %v", err)
	}

	sum, err := addLabel(LabelModN{Block: a.Block, Mod: p}, LabelModN{Block: b.Block, Mod: p})
	if err != nil {
		t.Fatalf("addLabel failed: %v", err)
	}

	want, err := e.delta.labelForResidue(p, addBlocks(base, base), (3+4)%p)
	if err != nil {
		t.Fatalf("labelForResidue failed: %v", err)
	}
	if sum.Residue() != want.Residue() {
		t.Fatalf("addLabel residue mismatch: got %d want %d", sum.Residue(), want.Residue())
	}
}

func TestCmulLabelResidue(t *testing.T) {
	seed := randomSeed(t)
	e, err := NewEncoder(seed)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	const p = 5
	base, err := e.draw(2, 0, nsBase)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	base = reduce(bigFromBlock(base))

	a, err := e.delta.labelForResidue(p, base, 2)
	if err != nil {
		t.Fatalf("labelForResidue failed: %v", err)
	}
	got := cmulLabel(LabelModN{Block: a.Block, Mod: p}, 3)

	want, err := e.delta.labelForResidue(p, mulScalarBlock(base, 3), (2*3)%p)
	if err != nil {
		t.Fatalf("labelForResidue failed: %v", err)
	}
	if got.Residue() != want.Residue() {
		t.Fatalf("cmulLabel residue mismatch: got %d want %d", got.Residue(), want.Residue())
	}
}

func TestNegateLabelResidue(t *testing.T) {
	seed := randomSeed(t)
	e, err := NewEncoder(seed)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	const p = 11
	base, err := e.draw(3, 0, nsBase)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	base = reduce(bigFromBlock(base))

	a, err := e.delta.labelForResidue(p, base, 4)
	if err != nil {
		t.Fatalf("labelForResidue failed: %v", err)
	}
	got := negateLabel(LabelModN{Block: a.Block, Mod: p})
	want := uint8((p - 4) % p)
	if got.Residue() != want {
		t.Fatalf("negateLabel residue mismatch: got %d want %d", got.Residue(), want)
	}
}

func TestAddLabelRejectsModulusMismatch(t *testing.T) {
	a := LabelModN{Block: label.Block{}, Mod: 3}
	b := LabelModN{Block: label.Block{}, Mod: 5}
	if _, err := addLabel(a, b); err == nil {
		t.Fatalf("expected modulus mismatch error")
	}
}
