/*
Copyright Dock Labs AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoder

import (
	"encoding/binary"

	bls12381 "github.com/kilic/bls12-381"
	"golang.org/x/crypto/blake2b"
)

func f2192() *bls12381.Fr {
	return &bls12381.Fr{0, 0, 0, 1}
}

// frFromOKM maps arbitrary bytes onto a BLS12-381 scalar by splitting a
// blake2b-384 digest into two halves recombined with a 2^192 shift.
func frFromOKM(message []byte) *bls12381.Fr {
	const (
		eightBytes = 8
		okmMiddle  = 24
	)

	// We pass a null key so error is impossible here.
	h, _ := blake2b.New384(nil) //nolint:errcheck

	// blake2b.digest() does not return an error.
	_, _ = h.Write(message)
	okm := h.Sum(nil)
	emptyEightBytes := make([]byte, eightBytes)

	elm := bls12381.NewFr().FromBytes(append(emptyEightBytes, okm[:okmMiddle]...))
	elm.Mul(elm, f2192())

	fr := bls12381.NewFr().FromBytes(append(emptyEightBytes, okm[okmMiddle:]...))
	elm.Add(elm, fr)

	return elm
}

// frFromUint64 builds the canonical scalar for a non-negative integer.
func frFromUint64(u uint64) *bls12381.Fr {
	buf := make([]byte, EncodedLength)
	binary.BigEndian.PutUint64(buf[EncodedLength-8:], u)

	return bls12381.NewFr().FromBytes(buf)
}
