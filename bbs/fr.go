/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"bytes"
	"crypto/rand"

	bls12381 "github.com/kilic/bls12-381"
	"golang.org/x/crypto/blake2b"
)

func parseFr(data []byte) *bls12381.Fr {
	return bls12381.NewFr().FromBytes(data)
}

// parseCanonicalFr rejects encodings of values outside the scalar field, which
// FromBytes would otherwise reduce silently.
func parseCanonicalFr(data []byte) (*bls12381.Fr, error) {
	fr := parseFr(data)
	if !bytes.Equal(fr.ToBytes(), data) {
		return nil, ErrInvalid
	}

	return fr, nil
}

func f2192() *bls12381.Fr {
	return &bls12381.Fr{0, 0, 0, 1}
}

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

// frFromWideBytes reduces a 64-byte little-endian integer modulo the group
// order. The input is split into chunks below the order and folded with 2^192
// multiplications, so no intermediate value depends on FromBytes reducing
// oversized input.
func frFromWideBytes(wide []byte) *bls12381.Fr {
	const (
		hiEnd  = 16
		midEnd = 40
	)

	be := make([]byte, len(wide))
	for i, b := range wide {
		be[len(wide)-1-i] = b
	}

	emptyEightBytes := make([]byte, 8)
	emptySixteenBytes := make([]byte, 16)

	elm := bls12381.NewFr().FromBytes(append(emptySixteenBytes, be[:hiEnd]...))

	mid := bls12381.NewFr().FromBytes(append(emptyEightBytes, be[hiEnd:midEnd]...))
	elm.Mul(elm, f2192())
	elm.Add(elm, mid)

	lo := bls12381.NewFr().FromBytes(append(emptyEightBytes, be[midEnd:]...))
	elm.Mul(elm, f2192())
	elm.Add(elm, lo)

	return elm
}

func frToRepr(fr *bls12381.Fr) *bls12381.Fr {
	frRepr := bls12381.NewFr()
	frRepr.Mul(fr, &bls12381.Fr{1})

	return frRepr
}

func createRandFr() (*bls12381.Fr, error) {
	fr, err := bls12381.NewFr().Rand(rand.Reader)
	if err != nil {
		return nil, err
	}

	return frToRepr(fr), nil
}

func zeroFr(fr *bls12381.Fr) {
	*fr = bls12381.Fr{}
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
