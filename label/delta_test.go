//
// delta_test.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

import (
	crand "crypto/rand"
	"testing"
)

// TestDeltaLsb checks Testable Property 1: for all RNGs,
// LSB(Delta::random(rng)) == 1.
func TestDeltaLsb(t *testing.T) {
	for i := 0; i < 100; i++ {
		d, err := RandomDelta(crand.Reader)
		if err != nil {
			t.Fatalf("RandomDelta failed: %v", err)
		}
		if d.Block().Lsb() != 1 {
			t.Fatalf("Delta lsb not set")
		}
	}
}
