//
// encoder_test.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package crt

import (
	crand "crypto/rand"
	"testing"

	"github.com/markkurossi/gclabel/label"
)

func randomSeed(t *testing.T) [label.SeedLen]byte {
	t.Helper()
	var seed [label.SeedLen]byte
	if _, err := crand.Read(seed[:]); err != nil {
		t.Fatalf("crand.Read failed: %v", err)
	}
	return seed
}

func TestCrtEncoderDeterministic(t *testing.T) {
	seed := randomSeed(t)

	e1, err := NewEncoder(seed)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	e2, err := NewEncoder(seed)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	for _, p := range Primes {
		d1, err := GetDeltaByModulus(e1.Delta(), p)
		if err != nil {
			t.Fatalf("GetDeltaByModulus failed: %v", err)
		}
		d2, err := GetDeltaByModulus(e2.Delta(), p)
		if err != nil {
			t.Fatalf("GetDeltaByModulus failed: %v", err)
		}
		if d1 != d2 {
			t.Fatalf("prime %d: deltas differ between two encoders sharing a seed", p)
		}
	}

	v1, err := e1.Encode(9, CrtU32)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	v2, err := e2.Encode(9, CrtU32)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for i := range v1.base {
		if v1.base[i] != v2.base[i] {
			t.Fatalf("base label %d differs between two encoders sharing a seed", i)
		}
	}
}

func TestCrtEncoderRangeFits(t *testing.T) {
	if !RangeFits(CrtU32, 42) {
		t.Fatalf("expected 42 to fit in CrtU32's range")
	}
	huge := CrtU32.Range().Uint64()
	if RangeFits(CrtU32, huge) {
		t.Fatalf("expected the range size itself to not fit")
	}
}

func TestDeltaResidueOne(t *testing.T) {
	seed := randomSeed(t)
	e, err := NewEncoder(seed)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	for _, p := range Primes {
		b, err := GetDeltaByModulus(e.Delta(), p)
		if err != nil {
			t.Fatalf("GetDeltaByModulus failed: %v", err)
		}
		if residue(b, p) != 1 {
			t.Fatalf("prime %d: delta residue is %d, want 1", p, residue(b, p))
		}
	}
}
