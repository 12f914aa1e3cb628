//
// crhash.go
//
// Copyright (c) 2019-2024 Markku Rossi
//
// All rights reserved.
//

package label

import (
	"crypto/aes"
	"crypto/cipher"
)

// fixedKey1 and fixedKey2 are the module's two fixed AES-128 keys used
// to build a correlation-robust hash, following the half-gates
// approach to garbling hash functions (Hπ(x) = π(x) ^ x, a
// Davies-Meyer single-key construction) that circuit.encryptHalf and
// ot.MITCCRH both build on. Two independent fixed keys give a 256 bit
// output from one 128 bit input block, which EncodingCommitment needs
// (spec: 32 byte hashes per wire).
var (
	fixedKey1 = [16]byte{
		0x61, 0x6c, 0x69, 0x63, 0x65, 0x67, 0x61, 0x72,
		0x62, 0x6c, 0x65, 0x64, 0x65, 0x6c, 0x74, 0x61,
	}
	fixedKey2 = [16]byte{
		0x62, 0x6f, 0x62, 0x65, 0x76, 0x61, 0x6c, 0x75,
		0x61, 0x74, 0x69, 0x6f, 0x6e, 0x74, 0x77, 0x65,
	}
)

var (
	fixedCipher1 cipher.Block
	fixedCipher2 cipher.Block
)

func init() {
	var err error
	fixedCipher1, err = aes.NewCipher(fixedKey1[:])
	if err != nil {
		panic(err)
	}
	fixedCipher2, err = aes.NewCipher(fixedKey2[:])
	if err != nil {
		panic(err)
	}
}

// davisMeyer computes pi(x) ^ x under the argument fixed-key cipher.
func davisMeyer(alg cipher.Block, x Block) Block {
	var out Block
	alg.Encrypt(out[:], x[:])
	return Block(out).Xor(x)
}

// crhash256 is the module's fixed-key correlation-robust hash: a
// 32-byte hash of a tweak-separated block, built from two independent
// Davies-Meyer AES lanes. It must not be substituted with a generic,
// unkeyed hash function (spec: "Implementers must not substitute an
// arbitrary hash").
func crhash256(tweak, x Block) [32]byte {
	in := tweak.Xor(x)

	var out [32]byte
	lo := davisMeyer(fixedCipher1, in)
	hi := davisMeyer(fixedCipher2, in)
	copy(out[0:16], lo[:])
	copy(out[16:32], hi[:])
	return out
}
