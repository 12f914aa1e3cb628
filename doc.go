// Package gclabel is the root of a label-encoding core for a
// garbled-circuit protocol stack: Block/Delta/Label primitives,
// Free-XOR friendly Labels collections, a typed EncodedValue family,
// an EncodingCommitment/EqualityCheck pair for binding and proving
// values without revealing them, a deterministic ChaCha20-backed
// Encoder, and a CRT (BMR16-style) arithmetic counterpart in the crt
// subpackage. It is a library: there is no network code, no process
// lifecycle, and no persistence here. It is meant to be imported by a
// garbling/evaluation layer and an oblivious-transfer layer that are
// out of scope.
//
// Example:
//
//	var seed [label.SeedLen]byte
//	if _, err := crand.Read(seed[:]); err != nil {
//		log.Fatal(err)
//	}
//	enc, err := label.NewEncoder(seed)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	full, err := enc.Encode(0, label.U8)
//	if err != nil {
//		log.Fatal(err)
//	}
//	active, err := full.Select(label.U8Value(0xA5))
//	if err != nil {
//		log.Fatal(err)
//	}
//	got, err := active.Decode(full.Decoding())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(got) // 165
package gclabel
