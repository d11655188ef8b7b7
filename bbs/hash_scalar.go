/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs

import (
	"io"

	bls12381 "github.com/kilic/bls12-381"
	"golang.org/x/crypto/sha3"
)

// frWideSize is the number of XOF output bytes reduced into each scalar. The
// extra 256 bits over the scalar size keep the reduction bias negligible.
const frWideSize = 64

// HashScalar derives scalar values by absorbing arbitrary input into a
// SHAKE-256 state, with an optional domain separation tag appended at
// finalization. The zero value is not usable; construct with NewHashScalar.
type HashScalar struct {
	xof sha3.ShakeHash
	dst []byte
}

// NewHashScalar creates a hash state with an optional domain separation tag.
// A nil dst selects the canonical untagged derivation.
func NewHashScalar(dst []byte) *HashScalar {
	return &HashScalar{
		xof: sha3.NewShake256(),
		dst: dst,
	}
}

// NewHashScalarWithInput creates a hash state and absorbs an initial input.
func NewHashScalarWithInput(input, dst []byte) *HashScalar {
	h := NewHashScalar(dst)
	h.Update(input)

	return h
}

// Update absorbs input incrementally. It must not be called once Finalize has
// been invoked on this state; the underlying XOF panics on write-after-read.
func (h *HashScalar) Update(input []byte) {
	// ShakeHash.Write does not return an error.
	_, _ = h.xof.Write(input)
}

// Clone returns an independent copy of the absorption state.
func (h *HashScalar) Clone() *HashScalar {
	return &HashScalar{
		xof: h.xof.Clone(),
		dst: h.dst,
	}
}

// Finalize appends the domain separation tag, if any, and transitions to the
// squeeze stream. The HashScalar must not be updated afterwards.
func (h *HashScalar) Finalize() *HashScalarRead {
	if len(h.dst) > 0 {
		_, _ = h.xof.Write(h.dst)
	}

	return &HashScalarRead{xof: h.xof}
}

// HashScalarRead is the squeeze stream of a finalized HashScalar.
type HashScalarRead struct {
	xof sha3.ShakeHash
}

// Next draws the next scalar from the stream. Zero results are rejected and
// the stream advanced, since downstream computations rely on invertibility.
// Successive calls yield independent, sequentially derived scalars.
func (r *HashScalarRead) Next() *bls12381.Fr {
	buf := make([]byte, frWideSize)

	for {
		// ShakeHash.Read does not return an error.
		_, _ = io.ReadFull(r.xof, buf)

		fr := frFromWideBytes(buf)
		if !fr.IsZero() {
			return fr
		}
	}
}

// HashScalarDigest absorbs input once and returns the first derived scalar.
func HashScalarDigest(input, dst []byte) *bls12381.Fr {
	return NewHashScalarWithInput(input, dst).Finalize().Next()
}
