//
// commitment_test.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"errors"
	"testing"
)

// TestCommitmentBinding checks Testable Property 6: VerifyCommit
// accepts only active labels consistent with the committed pair.
func TestCommitmentBinding(t *testing.T) {
	f := randomFullLabels(t, 8)
	c := Commit(f)

	active := make([]Label, f.Len())
	for i := 0; i < f.Len(); i++ {
		if i%2 == 0 {
			active[i] = f.Low(i)
		} else {
			active[i] = f.High(i)
		}
	}
	if err := c.VerifyCommit(NewActiveLabels(active)); err != nil {
		t.Fatalf("VerifyCommit rejected a legal selection: %v", err)
	}
}

// TestCommitmentRejectsForeignLabel checks that an active encoding whose
// labels all lie outside the committed pairs is rejected.
func TestCommitmentRejectsForeignLabel(t *testing.T) {
	f := randomFullLabels(t, 8)
	c := Commit(f)

	g := randomFullLabels(t, 8)
	foreign := make([]Label, g.Len())
	for i := 0; i < g.Len(); i++ {
		foreign[i] = g.Low(i)
	}

	err := c.VerifyCommit(NewActiveLabels(foreign))
	if !errors.Is(err, ErrInvalidCommitment) {
		t.Fatalf("expected ErrInvalidCommitment, got %v", err)
	}
}

// TestCommitmentHiding is a sanity check that the commitment does not
// leak the labels themselves: h0 must not equal the raw low block
// (the commitment has a different length and is a hash, not
// the identity function, but this guards against an accidental
// pass-through implementation).
func TestCommitmentHiding(t *testing.T) {
	f := randomFullLabels(t, 1)
	c := Commit(f)

	low := f.Low(0).Block()
	var widened [32]byte
	copy(widened[:16], low[:])
	if c.h0[0] == widened {
		t.Fatalf("commitment appears to embed the raw low label")
	}
}
