//
// commitment.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

// EncodingCommitment publicly binds a FullLabels collection without
// revealing it: for each wire i, (h0, h1) = (H(tweak(i)^low[i]),
// H(tweak(i)^high[i])), the tweak being XORed into the hash input.
type EncodingCommitment struct {
	h0, h1 [][32]byte
}

// Commit builds the commitment for f.
func Commit(f FullLabels) EncodingCommitment {
	c := EncodingCommitment{
		h0: make([][32]byte, f.Len()),
		h1: make([][32]byte, f.Len()),
	}
	for i := 0; i < f.Len(); i++ {
		t := Tweak(uint64(i))
		c.h0[i] = crhash256(t, f.Low(i).Block())
		c.h1[i] = crhash256(t, f.High(i).Block())
	}
	return c
}

// Len returns the number of wires the commitment covers.
func (c EncodingCommitment) Len() int {
	return len(c.h0)
}

// VerifyCommit checks that active is consistent with c: for every
// wire i, the hash of the active label under tweak(i) must equal
// either h0[i] or h1[i].
func (c EncodingCommitment) VerifyCommit(active ActiveLabels) error {
	if c.Len() != active.Len() {
		return ErrInvalidLength
	}
	for i := 0; i < c.Len(); i++ {
		t := Tweak(uint64(i))
		h := crhash256(t, active.At(i).Block())
		if h != c.h0[i] && h != c.h1[i] {
			return ErrInvalidCommitment
		}
	}
	return nil
}
